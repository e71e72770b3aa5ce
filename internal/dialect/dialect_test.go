package dialect_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oesnpg/dw-migrate/internal/dialect"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

func warehouse(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Warehouse()
	require.NoError(t, err)
	return s
}

func TestGetDialect(t *testing.T) {
	for _, name := range []string{"postgresql", "postgres", "PostgreSQL", " POSTGRES "} {
		d, err := dialect.GetDialect(name)
		require.NoError(t, err, name)
		assert.Equal(t, "postgresql", d.Name())
	}

	d, err := dialect.GetDialect("ORACLE")
	require.NoError(t, err)
	assert.Equal(t, "oracle", d.Name())

	_, err = dialect.GetDialect("mysql")
	assert.ErrorContains(t, err, "unknown dialect")
}

func TestRenderType_Mappings(t *testing.T) {
	tbl := &schema.Table{Name: "t"}
	cases := []struct {
		typ      schema.Type
		postgres string
		oracle   string
	}{
		{schema.IntegerType(), "INTEGER", "NUMBER(10)"},
		{schema.BigIntType(), "BIGINT", "NUMBER(19)"},
		{schema.SerialType(), "SERIAL", "NUMBER(10)"},
		{schema.DecimalType(15, 2), "NUMERIC(15,2)", "NUMBER(15,2)"},
		{schema.VarcharType(20), "VARCHAR(20)", "VARCHAR2(20)"},
		{schema.TextType(), "TEXT", "CLOB"},
		{schema.BooleanType(), "BOOLEAN", "NUMBER(1)"},
		{schema.DateType(), "DATE", "DATE"},
		{schema.TimestampType(), "TIMESTAMP", "TIMESTAMP"},
	}

	pg := &dialect.PostgresDialect{}
	ora := &dialect.OracleDialect{}
	for _, c := range cases {
		col := &schema.Column{Name: "c", Type: c.typ}

		got, err := pg.RenderType(tbl, col)
		require.NoError(t, err)
		assert.Equal(t, c.postgres, got, "postgres %s", c.typ)

		got, err = ora.RenderType(tbl, col)
		require.NoError(t, err)
		assert.Equal(t, c.oracle, got, "oracle %s", c.typ)
	}
}

func TestRenderType_Unsupported(t *testing.T) {
	tbl := &schema.Table{Name: "dim_x", Columns: []*schema.Column{
		{Name: "payload", Type: schema.Type{Kind: "JSONB"}},
	}}

	for _, name := range dialect.Names() {
		d, err := dialect.GetDialect(name)
		require.NoError(t, err)

		_, err = d.RenderCreateTable(tbl)
		var typeErr *dialect.UnsupportedTypeError
		require.True(t, errors.As(err, &typeErr), "%s: expected UnsupportedTypeError, got %v", name, err)
		assert.Equal(t, "dim_x", typeErr.Table)
		assert.Equal(t, "payload", typeErr.Column)
		assert.Equal(t, name, typeErr.Dialect)
		assert.Contains(t, err.Error(), "JSONB")
	}
}

func TestRenderIdentifier(t *testing.T) {
	pg := &dialect.PostgresDialect{}
	ora := &dialect.OracleDialect{}

	assert.Equal(t, "pk_dim_tempo", pg.RenderIdentifier(dialect.PrimaryKey, "dim_tempo", ""))
	assert.Equal(t, "fk_fato_x_tempo_sk", pg.RenderIdentifier(dialect.ForeignKey, "fato_x", "tempo_sk"))
	assert.Equal(t, "PK_DIM_TEMPO", ora.RenderIdentifier(dialect.PrimaryKey, "dim_tempo", ""))
	assert.Equal(t, "FK_FATO_X_TEMPO_SK", ora.RenderIdentifier(dialect.ForeignKey, "fato_x", "tempo_sk"))

	// Deterministic within a run.
	assert.Equal(t,
		pg.RenderIdentifier(dialect.Index, "fato_x", "ano"),
		pg.RenderIdentifier(dialect.Index, "fato_x", "ano"))
}

func TestRenderIdentifier_Shortened(t *testing.T) {
	pg := &dialect.PostgresDialect{}
	long := strings.Repeat("coluna_", 10)

	a := pg.RenderIdentifier(dialect.ForeignKey, "fato_x", long+"a")
	b := pg.RenderIdentifier(dialect.ForeignKey, "fato_x", long+"b")

	assert.LessOrEqual(t, len(a), 63)
	assert.LessOrEqual(t, len(b), 63)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "fk_fato_x_coluna_"))
}

func TestShortenIdentifier(t *testing.T) {
	assert.Equal(t, "short", dialect.ShortenIdentifier("short", 30))

	got := dialect.ShortenIdentifier(strings.Repeat("x", 40), 30)
	assert.Len(t, got, 30)
	assert.Equal(t, got, dialect.ShortenIdentifier(strings.Repeat("x", 40), 30))
}

func TestSerialDivergence(t *testing.T) {
	tbl := warehouse(t).Table("dim_tempo")
	pg := &dialect.PostgresDialect{}
	ora := &dialect.OracleDialect{}

	pgCreate, err := pg.RenderCreateTable(tbl)
	require.NoError(t, err)
	assert.Contains(t, pgCreate, "tempo_sk SERIAL NOT NULL")
	assert.Empty(t, pg.RenderSequences(tbl))

	oraCreate, err := ora.RenderCreateTable(tbl)
	require.NoError(t, err)
	assert.Contains(t, oraCreate, "tempo_sk NUMBER(10) DEFAULT SEQ_DIM_TEMPO_TEMPO_SK.NEXTVAL NOT NULL")

	seqs := ora.RenderSequences(tbl)
	require.Len(t, seqs, 1)
	assert.Equal(t, "CREATE SEQUENCE SEQ_DIM_TEMPO_TEMPO_SK START WITH 1 INCREMENT BY 1 NOCACHE", seqs[0])
}

func TestRenderCreateTable_PreservesColumnOrder(t *testing.T) {
	tbl := warehouse(t).Table("dim_localidade")
	stmt, err := (&dialect.PostgresDialect{}).RenderCreateTable(tbl)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(stmt, "CREATE TABLE dim_localidade (\n"))
	last := -1
	for _, col := range tbl.Columns {
		pos := strings.Index(stmt, "    "+col.Name+" ")
		require.GreaterOrEqual(t, pos, 0, col.Name)
		assert.Greater(t, pos, last, "column %s out of order", col.Name)
		last = pos
	}
}

func TestRenderCreateTable_Defaults(t *testing.T) {
	tbl := warehouse(t).Table("dim_ods")

	pg, err := (&dialect.PostgresDialect{}).RenderCreateTable(tbl)
	require.NoError(t, err)
	assert.Contains(t, pg, "ativo BOOLEAN DEFAULT TRUE")
	assert.Contains(t, pg, "numero_ods INTEGER NOT NULL")

	ora, err := (&dialect.OracleDialect{}).RenderCreateTable(tbl)
	require.NoError(t, err)
	assert.Contains(t, ora, "ativo NUMBER(1) DEFAULT 1")
	assert.Contains(t, ora, "titulo_ods VARCHAR2(200) NOT NULL")
}

func TestRenderPrimaryKey(t *testing.T) {
	tbl := warehouse(t).Table("dim_tempo")
	assert.Equal(t, "ALTER TABLE dim_tempo ADD CONSTRAINT pk_dim_tempo PRIMARY KEY (tempo_sk)",
		(&dialect.PostgresDialect{}).RenderPrimaryKey(tbl))
	assert.Equal(t, "ALTER TABLE dim_tempo ADD CONSTRAINT PK_DIM_TEMPO PRIMARY KEY (tempo_sk)",
		(&dialect.OracleDialect{}).RenderPrimaryKey(tbl))

	assert.Empty(t, (&dialect.PostgresDialect{}).RenderPrimaryKey(&schema.Table{Name: "x"}))
}

func TestRenderForeignKeysAndIndexes(t *testing.T) {
	s := warehouse(t)
	fact := s.Fact()
	pg := &dialect.PostgresDialect{}

	fks := pg.RenderForeignKeys(fact)
	require.Len(t, fks, len(s.Dimensions()))
	assert.Equal(t,
		"ALTER TABLE fato_pos_graduacao ADD CONSTRAINT fk_fato_pos_graduacao_tempo_sk FOREIGN KEY (tempo_sk) REFERENCES dim_tempo(tempo_sk)",
		fks[0])

	idx := pg.RenderIndexes(fact)
	require.Len(t, idx, len(fact.ForeignKeys)+len(fact.Indexes))
	assert.Equal(t, "CREATE INDEX idx_fato_pos_graduacao_tempo_sk ON fato_pos_graduacao(tempo_sk)", idx[0])
	assert.Equal(t, "CREATE INDEX idx_fato_ano_mes ON fato_pos_graduacao(ano, mes)", idx[len(idx)-1])

	// Dimensions get no foreign keys and only their declared indexes.
	tempo := s.Table("dim_tempo")
	assert.Empty(t, pg.RenderForeignKeys(tempo))
	assert.Equal(t, []string{"CREATE INDEX idx_tempo_ano_mes ON dim_tempo(ano, mes)"}, pg.RenderIndexes(tempo))
	assert.Equal(t, []string{"CREATE INDEX IDX_TEMPO_ANO_MES ON dim_tempo(ano, mes)"}, (&dialect.OracleDialect{}).RenderIndexes(tempo))
}

func TestRenderComments(t *testing.T) {
	tbl := &schema.Table{
		Name:    "dim_x",
		Comment: "Dimensão d'exemplo",
		Columns: []*schema.Column{
			{Name: "x_sk", Type: schema.SerialType(), Comment: "Chave"},
			{Name: "nome", Type: schema.VarcharType(10)},
		},
	}

	got := (&dialect.PostgresDialect{}).RenderComments(tbl)
	assert.Equal(t, []string{
		"COMMENT ON TABLE dim_x IS 'Dimensão d''exemplo'",
		"COMMENT ON COLUMN dim_x.x_sk IS 'Chave'",
	}, got)
}

func TestRenderInsert(t *testing.T) {
	tbl := &schema.Table{Name: "dim_x"}
	cols := []*schema.Column{
		{Name: "x_sk", Type: schema.IntegerType()},
		{Name: "nome", Type: schema.VarcharType(50)},
		{Name: "ativo", Type: schema.BooleanType()},
		{Name: "valor", Type: schema.DecimalType(15, 2)},
		{Name: "data", Type: schema.DateType()},
		{Name: "carga", Type: schema.TimestampType()},
		{Name: "obs", Type: schema.TextType(), Nullable: true},
	}
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	values := []any{0, "Não informado's", true, 12.5, ts, ts, nil}

	pg, err := (&dialect.PostgresDialect{}).RenderInsert(tbl, cols, values)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO dim_x (x_sk, nome, ativo, valor, data, carga, obs) VALUES (0, 'Não informado''s', TRUE, 12.50, DATE '2024-03-05', TIMESTAMP '2024-03-05 14:07:09', NULL)",
		pg)

	ora, err := (&dialect.OracleDialect{}).RenderInsert(tbl, cols, values)
	require.NoError(t, err)
	assert.Contains(t, ora, "'Não informado''s', 1, 12.50")

	_, err = (&dialect.OracleDialect{}).RenderInsert(tbl, cols, values[:2])
	assert.ErrorContains(t, err, "7 columns but 2 values")

	_, err = (&dialect.PostgresDialect{}).RenderInsert(tbl, cols[:1], []any{struct{}{}})
	assert.ErrorContains(t, err, "column x_sk")
}

func TestCatalog(t *testing.T) {
	pg, err := dialect.GetCatalog("postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres", pg.DriverName())
	assert.Equal(t, "public", pg.DefaultSchema())
	assert.Contains(t, pg.TablesQuery(), "$1")

	ora, err := dialect.GetCatalog("oracle")
	require.NoError(t, err)
	assert.Equal(t, "oracle", ora.DriverName())
	assert.Contains(t, ora.ColumnsQuery(), ":1")
}
