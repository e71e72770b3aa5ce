package engine

import (
	"strings"
	"unicode"
)

var abbreviations = map[string]string{
	// Nouns
	"nome": "name", "nm": "name", "sigla": "acronym", "sg": "acronym",
	"codigo": "code", "cod": "code", "cd": "code", "id": "code", "numero": "number", "num": "number",
	"descricao": "description", "desc": "description", "titulo": "title",
	"data": "date", "dt": "date", "ano": "year", "mes": "month", "dia": "day",
	"trimestre": "quarter", "semestre": "semester", "semana": "week",
	"uf": "state", "regiao": "region", "municipio": "city", "pais": "country",
	"endereco": "address", "cep": "zipcode", "telefone": "phone", "tel": "phone",
	"site": "url", "url": "url", "email": "email", "cor": "color",
	"qtd": "quantity", "quantidade": "quantity", "valor": "amount", "peso": "weight",
	"populacao": "population", "area": "area", "km2": "km2",
	"nota": "grade", "sexo": "sex", "orcid": "orcid", "lattes": "lattes",

	// Flags
	"ativo": "yesno", "ativa": "yesno", "capital": "yesno", "feriado": "yesno",
	"tem": "yesno", "bolsista": "yesno", "fim": "end",
}

// AnalyzeMeaning decodes a column name into English keywords ("sigla_uf" ->
// "acronym state"). Whole words found in the comment take priority.
func AnalyzeMeaning(colName, comment string) string {
	n := strings.ToLower(colName)
	words := strings.Join(strings.FieldsFunc(strings.ToLower(comment), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	}), " ")

	switch {
	case hasWord(words, "telefone"):
		return "phone"
	case hasWord(words, "e-mail"), hasWord(words, "email"):
		return "email"
	case hasWord(words, "endereço"):
		return "address"
	case hasWord(words, "cep"):
		return "zipcode"
	case hasWord(words, "url"), hasWord(words, "site"):
		return "url"
	case hasWord(words, "hex"):
		return "color"
	}

	parts := strings.Split(n, "_")
	decoded := make([]string, 0, len(parts))
	for _, part := range parts {
		if full, ok := abbreviations[part]; ok {
			decoded = append(decoded, full)
		} else {
			decoded = append(decoded, part)
		}
	}
	return strings.Join(decoded, " ")
}

// hasWord reports whether meaning contains every keyword as a whole word.
func hasWord(meaning string, words ...string) bool {
	fields := strings.Fields(meaning)
	for _, w := range words {
		found := false
		for _, f := range fields {
			if f == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
