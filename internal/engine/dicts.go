package engine

// State is a Brazilian federative unit with its IBGE codes.
type State struct {
	Code       string
	Acronym    string
	Name       string
	RegionCode int
	Capital    string
}

var Regions = map[int]string{
	1: "Norte",
	2: "Nordeste",
	3: "Sudeste",
	4: "Sul",
	5: "Centro-Oeste",
}

var States = []State{
	{"11", "RO", "Rondônia", 1, "Porto Velho"},
	{"12", "AC", "Acre", 1, "Rio Branco"},
	{"13", "AM", "Amazonas", 1, "Manaus"},
	{"14", "RR", "Roraima", 1, "Boa Vista"},
	{"15", "PA", "Pará", 1, "Belém"},
	{"16", "AP", "Amapá", 1, "Macapá"},
	{"17", "TO", "Tocantins", 1, "Palmas"},
	{"21", "MA", "Maranhão", 2, "São Luís"},
	{"22", "PI", "Piauí", 2, "Teresina"},
	{"23", "CE", "Ceará", 2, "Fortaleza"},
	{"24", "RN", "Rio Grande do Norte", 2, "Natal"},
	{"25", "PB", "Paraíba", 2, "João Pessoa"},
	{"26", "PE", "Pernambuco", 2, "Recife"},
	{"27", "AL", "Alagoas", 2, "Maceió"},
	{"28", "SE", "Sergipe", 2, "Aracaju"},
	{"29", "BA", "Bahia", 2, "Salvador"},
	{"31", "MG", "Minas Gerais", 3, "Belo Horizonte"},
	{"32", "ES", "Espírito Santo", 3, "Vitória"},
	{"33", "RJ", "Rio de Janeiro", 3, "Rio de Janeiro"},
	{"35", "SP", "São Paulo", 3, "São Paulo"},
	{"41", "PR", "Paraná", 4, "Curitiba"},
	{"42", "SC", "Santa Catarina", 4, "Florianópolis"},
	{"43", "RS", "Rio Grande do Sul", 4, "Porto Alegre"},
	{"50", "MS", "Mato Grosso do Sul", 5, "Campo Grande"},
	{"51", "MT", "Mato Grosso", 5, "Cuiabá"},
	{"52", "GO", "Goiás", 5, "Goiânia"},
	{"53", "DF", "Distrito Federal", 5, "Brasília"},
}

var (
	MonthNames   = []string{"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho", "Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"}
	WeekdayNames = []string{"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado"}

	FirstNames = []string{"Ana", "Maria", "Juliana", "Fernanda", "Patrícia", "Camila", "Beatriz", "Luciana", "Carla", "Renata",
		"João", "José", "Carlos", "Paulo", "Pedro", "Lucas", "Marcos", "Rafael", "Ricardo", "Eduardo"}
	LastNames = []string{"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira", "Lima", "Gomes",
		"Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes", "Soares", "Fernandes", "Vieira", "Barbosa"}
	Streets = []string{"Rua das Flores", "Avenida Brasil", "Rua XV de Novembro", "Avenida Paulista", "Rua da Consolação",
		"Avenida Sete de Setembro", "Rua Sete de Abril", "Avenida Getúlio Vargas", "Rua Marechal Deodoro", "Avenida Beira Mar"}

	// Words used for titles and descriptions of academic entities.
	AcademicWords = []string{"Ciência", "Educação", "Saúde", "Engenharia", "Tecnologia", "Sustentabilidade", "Gestão",
		"Pesquisa", "Inovação", "Desenvolvimento", "Ambiente", "Sociedade", "Política", "Economia", "Cultura",
		"Computação", "Matemática", "Física", "Química", "Biologia", "Agronomia", "Direito", "Letras", "História"}

	KnowledgeAreas = []string{"Ciências Exatas e da Terra", "Ciências Biológicas", "Engenharias", "Ciências da Saúde",
		"Ciências Agrárias", "Ciências Sociais Aplicadas", "Ciências Humanas", "Linguística, Letras e Artes", "Multidisciplinar"}

	// Values for short categorical columns, keyed by column name.
	Categories = map[string][]string{
		"nivel_ppg":                 {"M", "D", "F"},
		"modalidade":                {"Acadêmico", "Profissional"},
		"situacao":                  {"Em funcionamento", "Em desativação", "Desativado"},
		"conceito_capes":            {"3", "4", "5", "6", "7"},
		"categoria_qualis":          {"A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4", "C"},
		"natureza_juridica":         {"Pública", "Privada"},
		"categoria_administrativa":  {"Pública Federal", "Pública Estadual", "Pública Municipal", "Privada com fins lucrativos", "Privada sem fins lucrativos"},
		"organizacao_academica":     {"Universidade", "Centro Universitário", "Faculdade", "Instituto Federal"},
		"titulacao_maxima":          {"Mestrado", "Doutorado", "Pós-Doutorado", "Livre-Docência"},
		"categoria_profissional":    {"Permanente", "Colaborador", "Visitante"},
		"regime_trabalho":           {"Integral", "Parcial", "Horista"},
		"nivel_bolsa_produtividade": {"1A", "1B", "1C", "1D", "2"},
		"tipo_producao":             {"Artigo", "Livro", "Capítulo", "Trabalho em evento", "Patente", "Software"},
		"periodicidade":             {"Anual", "Semestral", "Trimestral", "Mensal", "Contínua"},
		"periodicidade_selecao":     {"Anual", "Semestral", "Contínua"},
		"categoria":                 {"Social", "Econômico", "Ambiental", "Institucional"},
	}
)
