package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

// Generator produces column values from column semantics. The same seed always
// yields the same sequence of values.
type Generator struct {
	faker *gofakeit.Faker
	from  time.Time
	to    time.Time
}

// NewGenerator seeds the faker. Dates fall in [from, to].
func NewGenerator(seed int64, from, to time.Time) *Generator {
	return &Generator{faker: gofakeit.New(seed), from: from, to: to}
}

// rowContext keeps the values a row's columns must agree on: the year/month
// columns describe the same date, and UF columns the same state.
type rowContext struct {
	date  time.Time
	state State
}

func (g *Generator) newRow() *rowContext {
	return &rowContext{
		date:  g.faker.DateRange(g.from, g.to).Truncate(24 * time.Hour),
		state: States[g.faker.Number(0, len(States)-1)],
	}
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func (g *Generator) pick(values []string) string {
	return values[g.faker.Number(0, len(values)-1)]
}

func (g *Generator) personName() string {
	return g.pick(FirstNames) + " " + g.pick(LastNames) + " " + g.pick(LastNames)
}

func (g *Generator) title(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = g.pick(AcademicWords)
	}
	return strings.Join(parts, " e ")
}

// Value returns a value for col. Optional columns are NULL one time in ten.
func (g *Generator) Value(t *schema.Table, col *schema.Column, row *rowContext) any {
	if col.Nullable && g.faker.Number(1, 10) == 1 {
		return nil
	}

	meaning := AnalyzeMeaning(col.Name, col.Comment)
	switch col.Type.Kind {
	case schema.Varchar, schema.Text:
		return truncate(g.text(t, col, meaning, row), col.Type.Length)
	case schema.Boolean:
		if hasWord(meaning, "end", "week") {
			wd := row.date.Weekday()
			return wd == time.Saturday || wd == time.Sunday
		}
		if hasWord(meaning, "yesno") && !strings.Contains(col.Name, "feriado") {
			return g.faker.Number(1, 10) <= 8
		}
		return g.faker.Bool()
	case schema.Date, schema.Timestamp:
		if hasWord(meaning, "date", "completa") {
			return row.date
		}
		return g.faker.DateRange(g.from, g.to)
	case schema.Decimal:
		limit := math.Pow(10, float64(col.Type.Precision-col.Type.Scale)) - 1
		if hasWord(meaning, "amount") {
			limit = math.Min(limit, 5_000_000)
		} else {
			limit = math.Min(limit, 10_000)
		}
		scale := math.Pow(10, float64(col.Type.Scale))
		return math.Round(g.faker.Float64Range(0, limit)*scale) / scale
	case schema.Integer, schema.BigInt:
		return g.integer(meaning, row)
	}
	return nil
}

func (g *Generator) integer(meaning string, row *rowContext) int {
	switch {
	case hasWord(meaning, "region", "code"):
		return row.state.RegionCode
	case hasWord(meaning, "year"):
		return row.date.Year()
	case hasWord(meaning, "month"):
		return int(row.date.Month())
	case hasWord(meaning, "day"):
		return row.date.Day()
	case hasWord(meaning, "quarter"):
		return (int(row.date.Month())-1)/3 + 1
	case hasWord(meaning, "semester"):
		return (int(row.date.Month())-1)/6 + 1
	case hasWord(meaning, "grade"):
		return g.faker.Number(3, 7)
	case hasWord(meaning, "number"):
		return g.faker.Number(1, 17)
	case hasWord(meaning, "quantity"):
		return g.faker.Number(0, 500)
	case hasWord(meaning, "population"):
		return g.faker.Number(1_000, 12_000_000)
	case hasWord(meaning, "prioridade"):
		return g.faker.Number(1, 5)
	default:
		return g.faker.Number(1, 1000)
	}
}

func (g *Generator) text(t *schema.Table, col *schema.Column, meaning string, row *rowContext) string {
	if values, ok := Categories[col.Name]; ok {
		return g.pick(values)
	}

	switch {
	case hasWord(meaning, "phone"):
		return g.faker.Numerify("(##) 9####-####")
	case hasWord(meaning, "email"):
		return g.faker.Email()
	case hasWord(meaning, "url"):
		return g.faker.URL()
	case hasWord(meaning, "zipcode"):
		return g.faker.Numerify("#####-###")
	case hasWord(meaning, "address"):
		return fmt.Sprintf("%s, %d", g.pick(Streets), g.faker.Number(1, 3000))
	case hasWord(meaning, "color"):
		return g.faker.HexColor()
	case hasWord(meaning, "sex"):
		return g.pick([]string{"M", "F"})
	case hasWord(meaning, "orcid"):
		return g.faker.Numerify("0000-000#-####-####")
	case hasWord(meaning, "lattes"):
		return g.faker.Numerify("################")

	case hasWord(meaning, "state", "name"):
		return row.state.Name
	case hasWord(meaning, "state", "code"):
		return row.state.Code
	case hasWord(meaning, "state"):
		return row.state.Acronym
	case hasWord(meaning, "region", "name"):
		return Regions[row.state.RegionCode]
	case hasWord(meaning, "city", "name"):
		return row.state.Capital
	case hasWord(meaning, "city", "code"):
		return row.state.Code + g.faker.Numerify("#####")
	case hasWord(meaning, "country"):
		return "Brasil"

	case hasWord(meaning, "name", "month"):
		return MonthNames[row.date.Month()-1]
	case hasWord(meaning, "name", "day", "week"):
		return WeekdayNames[row.date.Weekday()]

	case hasWord(meaning, "code"):
		digits := col.Type.Length
		if digits <= 0 || digits > 8 {
			digits = 8
		}
		return g.faker.Numerify(strings.Repeat("#", digits))
	case hasWord(meaning, "area"):
		return g.pick(KnowledgeAreas)
	case hasWord(meaning, "acronym"):
		return strings.ToUpper(g.faker.LetterN(uint(min(col.Type.Length, 5))))
	case hasWord(meaning, "name") && (schema.Entity(t.Name) == "docente" || hasWord(meaning, "docente")):
		return g.personName()
	case hasWord(meaning, "name"), hasWord(meaning, "title"):
		return g.title(2)
	case hasWord(meaning, "description"), col.Type.Kind == schema.Text:
		return g.faker.Sentence(12)
	}

	if col.Type.Length > 0 && col.Type.Length < 20 {
		return g.pick(AcademicWords)
	}
	return g.title(3)
}
