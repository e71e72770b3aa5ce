package main

import (
	"github.com/oesnpg/dw-migrate/cmd"

	_ "github.com/lib/pq"
	_ "github.com/sijms/go-ora/v2"
)

func main() {
	cmd.Execute()
}
