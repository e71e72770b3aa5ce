package schema

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DimensionPrefix and FactPrefix are the table name prefixes of the warehouse.
	DimensionPrefix = "dim_"
	FactPrefix      = "fato_"

	// UnknownLabel fills descriptive columns of the SK=0 member that every
	// dimension carries for facts with no identified reference.
	UnknownLabel = "Não informado"

	// UnknownKey is the surrogate key of the unknown member.
	UnknownKey = 0
)

// SurrogateKey returns the surrogate key column name of a dimension entity,
// e.g. "tempo" -> "tempo_sk". A full table name ("dim_tempo") is accepted too.
func SurrogateKey(entity string) string {
	return strings.TrimPrefix(entity, DimensionPrefix) + "_sk"
}

// Entity strips the table prefix: "dim_tempo" -> "tempo".
func Entity(tableName string) string {
	return strings.TrimPrefix(strings.TrimPrefix(tableName, DimensionPrefix), FactPrefix)
}

// UnknownFiller replaces UnknownLabel in columns too short to hold it
// (sigla_uf and similar codes).
const UnknownFiller = "XX"

// UnknownDate stands in for required dates of the unknown member.
var UnknownDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// UnknownMember returns the SK=0 row of a dimension, one value per column in
// declaration order. Optional columns stay NULL; required ones get a neutral
// value of their type.
func UnknownMember(t *Table) []any {
	values := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		if c.Name == t.PrimaryKey {
			values[i] = UnknownKey
			continue
		}
		if c.Nullable {
			if c.Type.Kind == Varchar || c.Type.Kind == Text {
				values[i] = unknownText(c)
			}
			continue
		}
		switch c.Type.Kind {
		case Varchar, Text:
			values[i] = unknownText(c)
		case Boolean:
			values[i] = false
		case Decimal:
			values[i] = 0.0
		case Date, Timestamp:
			values[i] = UnknownDate
		default:
			values[i] = 0
		}
	}
	return values
}

func unknownText(c *Column) string {
	if c.Type.Kind == Text || utf8.RuneCountInString(UnknownLabel) <= c.Type.Length {
		return UnknownLabel
	}
	if c.Type.Length < len(UnknownFiller) {
		return UnknownFiller[:c.Type.Length]
	}
	return UnknownFiller
}
