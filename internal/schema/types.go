package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TypeKind is the dialect-neutral column type.
type TypeKind string

const (
	Integer   TypeKind = "INTEGER"
	BigInt    TypeKind = "BIGINT"
	Serial    TypeKind = "SERIAL"
	Decimal   TypeKind = "DECIMAL"
	Varchar   TypeKind = "VARCHAR"
	Text      TypeKind = "TEXT"
	Boolean   TypeKind = "BOOLEAN"
	Date      TypeKind = "DATE"
	Timestamp TypeKind = "TIMESTAMP"
)

var knownKinds = map[TypeKind]bool{
	Integer: true, BigInt: true, Serial: true, Decimal: true, Varchar: true,
	Text: true, Boolean: true, Date: true, Timestamp: true,
}

// Valid reports whether k is one of the enumerated semantic kinds.
func (k TypeKind) Valid() bool {
	return knownKinds[k]
}

// Type is a semantic column type with its length or precision parameters.
type Type struct {
	Kind      TypeKind
	Length    int // VARCHAR
	Precision int // DECIMAL
	Scale     int // DECIMAL
}

func IntegerType() Type   { return Type{Kind: Integer} }
func BigIntType() Type    { return Type{Kind: BigInt} }
func SerialType() Type    { return Type{Kind: Serial} }
func TextType() Type      { return Type{Kind: Text} }
func BooleanType() Type   { return Type{Kind: Boolean} }
func DateType() Type      { return Type{Kind: Date} }
func TimestampType() Type { return Type{Kind: Timestamp} }

func VarcharType(length int) Type {
	return Type{Kind: Varchar, Length: length}
}

func DecimalType(precision, scale int) Type {
	return Type{Kind: Decimal, Precision: precision, Scale: scale}
}

// String returns the semantic spelling, e.g. VARCHAR(20) or DECIMAL(15,2).
func (t Type) String() string {
	switch t.Kind {
	case Varchar:
		return fmt.Sprintf("VARCHAR(%d)", t.Length)
	case Decimal:
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
	default:
		return string(t.Kind)
	}
}

var typePattern = regexp.MustCompile(`^\s*([A-Za-z_]+)\s*(?:\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\))?\s*$`)

// ParseType parses the spelling produced by Type.String. AUTO_INCREMENT is
// accepted as an alias of SERIAL. Unknown kinds are returned as-is so the
// dialects can reject them with a precise error.
func ParseType(s string) (Type, error) {
	m := typePattern.FindStringSubmatch(s)
	if m == nil {
		return Type{}, fmt.Errorf("malformed type %q", s)
	}

	kind := TypeKind(strings.ToUpper(m[1]))
	if kind == "AUTO_INCREMENT" {
		kind = Serial
	}

	t := Type{Kind: kind}
	switch kind {
	case Varchar:
		if m[2] == "" || m[3] != "" {
			return Type{}, fmt.Errorf("type %q: VARCHAR takes exactly one length", s)
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Type{}, fmt.Errorf("type %q: %w", s, err)
		}
		t.Length = n
	case Decimal:
		if m[2] == "" || m[3] == "" {
			return Type{}, fmt.Errorf("type %q: DECIMAL takes precision and scale", s)
		}
		p, err := strconv.Atoi(m[2])
		if err != nil {
			return Type{}, fmt.Errorf("type %q: %w", s, err)
		}
		sc, err := strconv.Atoi(m[3])
		if err != nil {
			return Type{}, fmt.Errorf("type %q: %w", s, err)
		}
		t.Precision, t.Scale = p, sc
	default:
		if m[2] != "" {
			return Type{}, fmt.Errorf("type %q: %s takes no parameters", s, kind)
		}
	}
	return t, nil
}
