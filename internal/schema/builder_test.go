package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

func dim(name string, extra ...*schema.Column) *schema.Table {
	sk := schema.SurrogateKey(name)
	cols := append([]*schema.Column{{Name: sk, Type: schema.SerialType()}}, extra...)
	return &schema.Table{Name: name, Kind: schema.KindDimension, Columns: cols, PrimaryKey: sk}
}

func fact(name string, dims ...string) *schema.Table {
	t := &schema.Table{
		Name:       name,
		Kind:       schema.KindFact,
		Columns:    []*schema.Column{{Name: "fato_id", Type: schema.SerialType()}},
		PrimaryKey: "fato_id",
	}
	for _, d := range dims {
		sk := schema.SurrogateKey(d)
		t.Columns = append(t.Columns, &schema.Column{Name: sk, Type: schema.IntegerType()})
		t.ForeignKeys = append(t.ForeignKeys, &schema.ForeignKey{Column: sk, RefTable: d})
	}
	return t
}

func problems(t *testing.T, err error) []string {
	t.Helper()
	var defErr *schema.SchemaDefinitionError
	require.True(t, errors.As(err, &defErr), "expected SchemaDefinitionError, got %v", err)
	return defErr.Problems
}

func TestBuild_ValidStar(t *testing.T) {
	s, err := schema.NewBuilder("dw").
		AddTable(fact("fato_x", "dim_tempo", "dim_ies")).
		AddTable(dim("dim_tempo", &schema.Column{Name: "ano", Type: schema.IntegerType()})).
		AddTable(dim("dim_ies")).
		Build()
	require.NoError(t, err)

	// The fact is moved after the dimensions it references.
	assert.Equal(t, []string{"dim_tempo", "dim_ies", "fato_x"}, names(s.Tables))

	fk := s.Fact().ForeignKeyFor("tempo_sk")
	require.NotNil(t, fk)
	assert.Equal(t, "tempo_sk", fk.RefColumn)
	assert.Len(t, s.Dimensions(), 2)
}

func TestBuild_ReferentialClosure(t *testing.T) {
	s, err := schema.Warehouse()
	require.NoError(t, err)

	for _, tbl := range s.Tables {
		for _, fk := range tbl.ForeignKeys {
			assert.True(t, tbl.HasColumn(fk.Column), "%s.%s", tbl.Name, fk.Column)
			target := s.Table(fk.RefTable)
			require.NotNil(t, target, fk.RefTable)
			assert.Equal(t, target.PrimaryKey, fk.RefColumn)
			assert.True(t, target.HasColumn(fk.RefColumn))
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		tables []*schema.Table
		want   string
	}{
		{
			name:   "schema name with path separators",
			schema: "../../escaped",
			tables: []*schema.Table{dim("dim_a"), fact("fato_x", "dim_a")},
			want:   `schema name "../../escaped": invalid identifier`,
		},
		{
			name:   "schema name upper case",
			schema: "DW",
			tables: []*schema.Table{dim("dim_a"), fact("fato_x", "dim_a")},
			want:   `schema name "DW": invalid identifier`,
		},
		{
			name: "index named like a foreign key index",
			tables: func() []*schema.Table {
				f := fact("fato_x", "dim_tempo")
				f.Indexes = []*schema.Index{{Name: "fato_x_tempo_sk", Columns: []string{"tempo_sk"}}}
				return []*schema.Table{dim("dim_tempo"), f}
			}(),
			want: `index fato_x.fato_x_tempo_sk: name already used by the foreign key index on fato_x(tempo_sk)`,
		},
		{
			name: "dimension index named like a foreign key index",
			tables: func() []*schema.Table {
				d := dim("dim_tempo", &schema.Column{Name: "ano", Type: schema.IntegerType()})
				d.Indexes = []*schema.Index{{Name: "fato_x_tempo_sk", Columns: []string{"ano"}}}
				return []*schema.Table{d, fact("fato_x", "dim_tempo")}
			}(),
			want: `index dim_tempo.fato_x_tempo_sk: name already used by the foreign key index on fato_x(tempo_sk)`,
		},
		{
			name:   "duplicate table",
			tables: []*schema.Table{dim("dim_a"), dim("dim_a"), fact("fato_x")},
			want:   `table "dim_a": declared more than once`,
		},
		{
			name:   "invalid identifier",
			tables: []*schema.Table{dim("Dim-A"), fact("fato_x")},
			want:   `table "Dim-A": invalid identifier`,
		},
		{
			name:   "unknown fk target",
			tables: []*schema.Table{fact("fato_x", "dim_nada")},
			want:   `table "fato_x": foreign key "nada_sk" references unknown table "dim_nada"`,
		},
		{
			name:   "no fact",
			tables: []*schema.Table{dim("dim_a")},
			want:   "expected exactly one fact table, found 0",
		},
		{
			name:   "two facts",
			tables: []*schema.Table{fact("fato_a"), fact("fato_b")},
			want:   "expected exactly one fact table, found 2",
		},
		{
			name: "dimension with foreign key",
			tables: func() []*schema.Table {
				a := dim("dim_a", &schema.Column{Name: "b_sk", Type: schema.IntegerType()})
				a.ForeignKeys = []*schema.ForeignKey{{Column: "b_sk", RefTable: "dim_b"}}
				return []*schema.Table{a, dim("dim_b"), fact("fato_x")}
			}(),
			want: `table "dim_a": only the fact table may declare foreign keys`,
		},
		{
			name: "fk to the fact",
			tables: func() []*schema.Table {
				f := fact("fato_x")
				f.Columns = append(f.Columns, &schema.Column{Name: "pai_id", Type: schema.IntegerType()})
				f.ForeignKeys = []*schema.ForeignKey{{Column: "pai_id", RefTable: "fato_x"}}
				return []*schema.Table{f}
			}(),
			want: `table "fato_x": foreign key "pai_id" must reference a dimension, "fato_x" is a fact`,
		},
		{
			name: "fk column missing",
			tables: func() []*schema.Table {
				f := fact("fato_x")
				f.ForeignKeys = []*schema.ForeignKey{{Column: "a_sk", RefTable: "dim_a"}}
				return []*schema.Table{dim("dim_a"), f}
			}(),
			want: `table "fato_x": foreign key column "a_sk" does not exist`,
		},
		{
			name: "primary key missing",
			tables: func() []*schema.Table {
				a := dim("dim_a")
				a.PrimaryKey = "id"
				return []*schema.Table{a, fact("fato_x")}
			}(),
			want: `table "dim_a": primary key column "id" does not exist`,
		},
		{
			name:   "nullable serial",
			tables: []*schema.Table{dim("dim_a", &schema.Column{Name: "seq", Type: schema.SerialType(), Nullable: true}), fact("fato_x")},
			want:   "column dim_a.seq: SERIAL column cannot be nullable",
		},
		{
			name:   "bad varchar",
			tables: []*schema.Table{dim("dim_a", &schema.Column{Name: "nome", Type: schema.VarcharType(0)}), fact("fato_x")},
			want:   "column dim_a.nome: VARCHAR length must be positive",
		},
		{
			name:   "bad decimal",
			tables: []*schema.Table{dim("dim_a", &schema.Column{Name: "valor", Type: schema.DecimalType(2, 5)}), fact("fato_x")},
			want:   "column dim_a.valor: invalid DECIMAL(2,5)",
		},
		{
			name:   "unknown type",
			tables: []*schema.Table{dim("dim_a", &schema.Column{Name: "geo", Type: schema.Type{Kind: "POINT"}}), fact("fato_x")},
			want:   `column dim_a.geo: unknown type "POINT"`,
		},
		{
			name: "duplicate index name",
			tables: func() []*schema.Table {
				a := dim("dim_a", &schema.Column{Name: "cod", Type: schema.IntegerType()})
				b := dim("dim_b", &schema.Column{Name: "cod", Type: schema.IntegerType()})
				a.Indexes = []*schema.Index{{Name: "codigo", Columns: []string{"cod"}}}
				b.Indexes = []*schema.Index{{Name: "codigo", Columns: []string{"cod"}}}
				return []*schema.Table{a, b, fact("fato_x")}
			}(),
			want: `index dim_b.codigo: name already used on table "dim_a"`,
		},
		{
			name: "index column missing",
			tables: func() []*schema.Table {
				a := dim("dim_a")
				a.Indexes = []*schema.Index{{Name: "a_nome", Columns: []string{"nome"}}}
				return []*schema.Table{a, fact("fato_x")}
			}(),
			want: `index dim_a.a_nome: column "nome" does not exist`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := tt.schema
			if name == "" {
				name = "dw"
			}
			b := schema.NewBuilder(name)
			for _, tbl := range tt.tables {
				b.AddTable(tbl)
			}
			s, err := b.Build()
			assert.Nil(t, s)
			assert.Contains(t, problems(t, err), tt.want)
		})
	}
}

func TestBuild_ReportsEveryProblem(t *testing.T) {
	_, err := schema.NewBuilder("").
		AddTable(dim("dim_a", &schema.Column{Name: "x", Type: schema.VarcharType(-1)})).
		Build()

	got := problems(t, err)
	assert.Contains(t, got, "schema name is empty")
	assert.Contains(t, got, "column dim_a.x: VARCHAR length must be positive")
	assert.Contains(t, got, "expected exactly one fact table, found 0")
	assert.Contains(t, err.Error(), "3 problems")
}

func TestSchemaDefinitionError_SingleProblem(t *testing.T) {
	err := &schema.SchemaDefinitionError{Schema: "dw", Problems: []string{"schema name is empty"}}
	assert.Equal(t, `schema "dw": schema name is empty`, err.Error())
}
