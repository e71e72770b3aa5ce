package schema

import (
	"fmt"
	"sort"
	"strings"
)

// SortByDependencies orders tables so every table comes after the tables its
// foreign keys reference. It is stable: among tables whose dependencies are
// satisfied, declaration order wins, so an already valid order is returned
// unchanged. Unknown targets are ignored (Build reports them). A cycle is an
// error.
func SortByDependencies(tables []*Table) ([]*Table, error) {
	known := make(map[string]bool, len(tables))
	for _, t := range tables {
		known[t.Name] = true
	}

	sorted := make([]*Table, 0, len(tables))
	processed := make(map[string]bool, len(tables))

	for len(sorted) < len(tables) {
		added := false

		for _, t := range tables {
			if processed[t.Name] {
				continue
			}

			ready := true
			for _, fk := range t.ForeignKeys {
				if known[fk.RefTable] && fk.RefTable != t.Name && !processed[fk.RefTable] {
					ready = false
					break
				}
			}

			if ready {
				sorted = append(sorted, t)
				processed[t.Name] = true
				added = true
				// Restart so an earlier-declared table that just became ready
				// keeps its place ahead of later ones.
				break
			}
		}

		if !added {
			var pending []string
			for _, t := range tables {
				if !processed[t.Name] {
					pending = append(pending, t.Name)
				}
			}
			sort.Strings(pending)
			return nil, fmt.Errorf("circular foreign key dependency between tables: %s", strings.Join(pending, ", "))
		}
	}

	return sorted, nil
}
