package inspect_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oesnpg/dw-migrate/internal/inspect"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

func starSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.NewBuilder("dw").
		AddTable(&schema.Table{
			Name: "dim_tempo",
			Kind: schema.KindDimension,
			Columns: []*schema.Column{
				{Name: "tempo_sk", Type: schema.SerialType()},
				{Name: "ano", Type: schema.IntegerType()},
				{Name: "nome_mes", Type: schema.VarcharType(20), Nullable: true},
			},
			PrimaryKey: "tempo_sk",
		}).
		AddTable(&schema.Table{
			Name: "fato_x",
			Kind: schema.KindFact,
			Columns: []*schema.Column{
				{Name: "fato_id", Type: schema.SerialType()},
				{Name: "tempo_sk", Type: schema.IntegerType()},
			},
			PrimaryKey:  "fato_id",
			ForeignKeys: []*schema.ForeignKey{{Column: "tempo_sk", RefTable: "dim_tempo"}},
		}).
		Build()
	require.NoError(t, err)
	return s
}

func matchingLive() *inspect.LiveSchema {
	return &inspect.LiveSchema{Tables: map[string]*inspect.LiveTable{
		"dim_tempo": {Name: "dim_tempo", Columns: []inspect.LiveColumn{
			{Name: "tempo_sk", DataType: "int4"},
			{Name: "ano", DataType: "int4"},
			{Name: "nome_mes", DataType: "varchar", Nullable: true},
		}},
		"fato_x": {Name: "fato_x",
			Columns: []inspect.LiveColumn{
				{Name: "fato_id", DataType: "int4"},
				{Name: "tempo_sk", DataType: "int4"},
			},
			ForeignKeys: []inspect.LiveForeignKey{{Column: "tempo_sk", RefTable: "dim_tempo", RefColumn: "tempo_sk"}},
		},
	}}
}

func TestDiff_Clean(t *testing.T) {
	r := inspect.Diff(starSchema(t), matchingLive())
	assert.True(t, r.Clean(), "%+v", r)

	var buf bytes.Buffer
	r.Write(&buf)
	assert.Contains(t, buf.String(), "Nenhuma divergência")
}

func TestDiff_Drift(t *testing.T) {
	live := matchingLive()
	delete(live.Tables, "fato_x")
	live.Tables["dim_tempo"].Columns = []inspect.LiveColumn{
		{Name: "tempo_sk", DataType: "int4"},
		{Name: "ano", DataType: "int4", Nullable: true},
		{Name: "legado", DataType: "text", Nullable: true},
	}
	live.Tables["tmp_carga"] = &inspect.LiveTable{Name: "tmp_carga"}

	r := inspect.Diff(starSchema(t), live)
	assert.False(t, r.Clean())
	assert.Equal(t, []string{"fato_x"}, r.MissingTables)
	assert.Equal(t, []string{"dim_tempo.nome_mes"}, r.MissingColumns)
	assert.Equal(t, []string{"dim_tempo.ano"}, r.NullabilityChanged)
	assert.Equal(t, []string{"tmp_carga"}, r.ExtraTables)
	assert.Empty(t, r.MissingForeignKeys)

	var buf bytes.Buffer
	r.Write(&buf)
	assert.Contains(t, buf.String(), "Tabelas ausentes (1):\n  - fato_x\n")
	assert.Contains(t, buf.String(), "Tabelas não previstas (1):\n  - tmp_carga\n")
}

func TestDiff_MissingForeignKey(t *testing.T) {
	live := matchingLive()
	live.Tables["fato_x"].ForeignKeys = nil

	r := inspect.Diff(starSchema(t), live)
	assert.Equal(t, []string{"fato_x.tempo_sk -> dim_tempo.tempo_sk"}, r.MissingForeignKeys)
}
