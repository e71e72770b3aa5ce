package schema

// WarehouseName is the name of the OES-NPG data warehouse.
const WarehouseName = "dw_oesnpg"

func key(entity, comment string) *Column {
	return &Column{Name: SurrogateKey(entity), Type: SerialType(), Comment: comment}
}

func required(name string, t Type, comment string) *Column {
	return &Column{Name: name, Type: t, Comment: comment}
}

func optional(name string, t Type, comment string) *Column {
	return &Column{Name: name, Type: t, Nullable: true, Comment: comment}
}

func flag(name, comment string) *Column {
	return &Column{Name: name, Type: BooleanType(), Nullable: true, Default: "true", Comment: comment}
}

func metric(name, comment string) *Column {
	return &Column{Name: name, Type: IntegerType(), Nullable: true, Default: "0", Comment: comment}
}

func amount(name, comment string) *Column {
	return &Column{Name: name, Type: DecimalType(15, 2), Nullable: true, Default: "0", Comment: comment}
}

func reference(entity, comment string) *Column {
	return &Column{Name: SurrogateKey(entity), Type: IntegerType(), Comment: comment}
}

func dimension(name, comment string, indexes []*Index, cols ...*Column) *Table {
	return &Table{
		Name:       name,
		Kind:       KindDimension,
		Comment:    comment,
		Columns:    cols,
		PrimaryKey: cols[0].Name,
		Indexes:    indexes,
	}
}

// Warehouse returns the OES-NPG star schema: eight dimensions and the
// fato_pos_graduacao fact table. Every call builds a fresh value.
func Warehouse() (*Schema, error) {
	tempo := dimension("dim_tempo", "Dimensão temporal com hierarquia ano/mês/dia",
		[]*Index{{Name: "tempo_ano_mes", Columns: []string{"ano", "mes"}}},
		key("tempo", "Chave surrogate temporal"),
		required("data_completa", DateType(), "Data completa"),
		required("ano", IntegerType(), "Ano"),
		required("mes", IntegerType(), "Mês"),
		required("dia", IntegerType(), "Dia"),
		required("trimestre", IntegerType(), "Trimestre"),
		required("semestre", IntegerType(), "Semestre"),
		optional("nome_mes", VarcharType(20), "Nome do mês"),
		optional("nome_dia_semana", VarcharType(20), "Nome do dia da semana"),
		optional("fim_de_semana", BooleanType(), "Indicador de fim de semana"),
		optional("feriado", BooleanType(), "Indicador de feriado"),
	)

	localidade := dimension("dim_localidade", "Dimensão geográfica com hierarquia região/UF/município",
		[]*Index{{Name: "localidade_uf", Columns: []string{"codigo_uf"}}},
		key("localidade", "Chave surrogate geográfica"),
		required("codigo_uf", VarcharType(2), "Código UF IBGE"),
		required("nome_uf", VarcharType(50), "Nome da UF"),
		required("sigla_uf", VarcharType(2), "Sigla da UF"),
		required("codigo_regiao", IntegerType(), "Código da região IBGE"),
		required("nome_regiao", VarcharType(20), "Nome da região"),
		optional("codigo_municipio", VarcharType(7), "Código do município IBGE"),
		optional("nome_municipio", VarcharType(100), "Nome do município"),
		optional("capital", BooleanType(), "Indicador de capital"),
		optional("populacao", IntegerType(), "População estimada"),
		optional("area_km2", DecimalType(10, 2), "Área em km²"),
	)

	tema := dimension("dim_tema", "Dimensão de temas de pesquisa com hierarquia área/subárea",
		[]*Index{{Name: "tema_area", Columns: []string{"codigo_area_conhecimento"}}},
		key("tema", "Chave surrogate do tema"),
		required("codigo_area_conhecimento", VarcharType(10), "Código da área CAPES"),
		required("nome_area_conhecimento", VarcharType(200), "Nome da área de conhecimento"),
		optional("codigo_subarea_conhecimento", VarcharType(10), "Código da subárea CAPES"),
		optional("nome_subarea_conhecimento", VarcharType(200), "Nome da subárea de conhecimento"),
		optional("codigo_especialidade", VarcharType(10), "Código da especialidade"),
		optional("nome_especialidade", VarcharType(200), "Nome da especialidade"),
		optional("grande_area", VarcharType(100), "Grande área do conhecimento"),
		flag("ativo", "Indicador de tema ativo"),
	)

	ods := dimension("dim_ods", "Dimensão dos Objetivos de Desenvolvimento Sustentável (ONU)", nil,
		key("ods", "Chave surrogate ODS"),
		required("numero_ods", IntegerType(), "Número do ODS (1-17)"),
		required("titulo_ods", VarcharType(200), "Título do ODS"),
		optional("descricao_ods", TextType(), "Descrição detalhada do ODS"),
		optional("cor_oficial", VarcharType(7), "Cor oficial do ODS (hex)"),
		optional("icone_url", VarcharType(500), "URL do ícone oficial"),
		optional("categoria", VarcharType(50), "Categoria do ODS"),
		optional("prioridade_brasil", IntegerType(), "Prioridade no contexto brasileiro"),
		flag("ativo", "Indicador de ODS ativo"),
	)

	ies := dimension("dim_ies", "Dimensão das Instituições de Ensino Superior",
		[]*Index{{Name: "ies_codigo", Columns: []string{"codigo_ies"}}},
		key("ies", "Chave surrogate da IES"),
		required("codigo_ies", VarcharType(10), "Código MEC da IES"),
		required("nome_ies", VarcharType(200), "Nome da IES"),
		optional("sigla_ies", VarcharType(20), "Sigla da IES"),
		optional("natureza_juridica", VarcharType(50), "Natureza jurídica"),
		optional("categoria_administrativa", VarcharType(50), "Categoria administrativa"),
		optional("organizacao_academica", VarcharType(50), "Organização acadêmica"),
		optional("sigla_uf", VarcharType(2), "UF da sede"),
		optional("nome_municipio", VarcharType(100), "Município da sede"),
		optional("endereco", VarcharType(300), "Endereço completo"),
		optional("cep", VarcharType(10), "CEP"),
		optional("telefone", VarcharType(20), "Telefone"),
		optional("site_oficial", VarcharType(200), "Site oficial"),
		optional("ano_fundacao", IntegerType(), "Ano de fundação"),
		optional("credenciamento_mec", DateType(), "Data de credenciamento MEC"),
		flag("ativa", "Indicador de IES ativa"),
	)

	ppg := dimension("dim_ppg", "Dimensão dos Programas de Pós-Graduação",
		[]*Index{{Name: "ppg_codigo", Columns: []string{"codigo_ppg"}}},
		key("ppg", "Chave surrogate do PPG"),
		required("codigo_ppg", VarcharType(20), "Código CAPES do PPG"),
		required("nome_ppg", VarcharType(200), "Nome do programa"),
		required("nivel_ppg", VarcharType(20), "Nível (M/D/F)"),
		optional("modalidade", VarcharType(50), "Modalidade do programa"),
		optional("codigo_ies", VarcharType(10), "Código MEC da IES ofertante"),
		optional("sigla_ies", VarcharType(20), "Sigla da IES ofertante"),
		optional("nota_capes", IntegerType(), "Nota CAPES (1-7)"),
		optional("conceito_capes", VarcharType(10), "Conceito CAPES"),
		optional("ano_inicio", IntegerType(), "Ano de início do programa"),
		optional("ano_recomendacao", IntegerType(), "Ano de recomendação CAPES"),
		optional("situacao", VarcharType(20), "Situação do programa"),
		optional("periodicidade_selecao", VarcharType(50), "Periodicidade de seleção"),
		optional("tem_mestrado", BooleanType(), "Oferece mestrado"),
		optional("tem_doutorado", BooleanType(), "Oferece doutorado"),
		flag("ativo", "Indicador de PPG ativo"),
	)

	producao := dimension("dim_producao", "Dimensão dos tipos de produção acadêmica", nil,
		key("producao", "Chave surrogate da produção"),
		required("tipo_producao", VarcharType(50), "Tipo de produção"),
		optional("subtipo_producao", VarcharType(100), "Subtipo específico"),
		optional("categoria_qualis", VarcharType(10), "Categoria Qualis"),
		optional("peso_producao", DecimalType(5, 2), "Peso para cálculo de índices"),
		optional("descricao", TextType(), "Descrição detalhada"),
		optional("criterios_qualidade", TextType(), "Critérios de qualidade"),
		optional("periodicidade", VarcharType(20), "Periodicidade típica"),
		optional("indexadores", VarcharType(200), "Principais indexadores"),
		flag("ativo", "Indicador de tipo ativo"),
	)

	docente := dimension("dim_docente", "Dimensão dos docentes permanentes",
		[]*Index{{Name: "docente_nome", Columns: []string{"nome_docente"}}},
		key("docente", "Chave surrogate do docente"),
		required("id_pessoa", VarcharType(20), "ID único da pessoa"),
		required("nome_docente", VarcharType(200), "Nome completo"),
		optional("nome_citacao", VarcharType(200), "Nome para citação"),
		optional("sexo", VarcharType(1), "Sexo (M/F)"),
		optional("data_nascimento", DateType(), "Data de nascimento"),
		optional("pais_nascimento", VarcharType(50), "País de nascimento"),
		optional("uf_nascimento", VarcharType(2), "UF de nascimento"),
		optional("titulacao_maxima", VarcharType(20), "Maior titulação"),
		optional("ano_titulacao", IntegerType(), "Ano da titulação máxima"),
		optional("sigla_ies_titulacao", VarcharType(20), "IES de titulação"),
		optional("pais_titulacao", VarcharType(50), "País de titulação"),
		optional("area_titulacao", VarcharType(200), "Área de titulação"),
		optional("categoria_profissional", VarcharType(50), "Categoria profissional"),
		optional("regime_trabalho", VarcharType(20), "Regime de trabalho"),
		optional("funcao_administrativa", VarcharType(100), "Função administrativa"),
		optional("bolsista_produtividade", BooleanType(), "É bolsista produtividade CNPq"),
		optional("nivel_bolsa_produtividade", VarcharType(10), "Nível da bolsa produtividade"),
		optional("orcid", VarcharType(50), "ORCID ID"),
		optional("lattes_id", VarcharType(50), "ID Lattes"),
		optional("data_atualizacao_lattes", DateType(), "Última atualização Lattes"),
		flag("ativo", "Indicador de docente ativo"),
	)

	dims := []*Table{tempo, localidade, tema, ods, ies, ppg, producao, docente}

	fato := &Table{
		Name:       "fato_pos_graduacao",
		Kind:       KindFact,
		Comment:    "Fato principal consolidando métricas da pós-graduação brasileira",
		PrimaryKey: "fato_id",
		Columns: []*Column{
			{Name: "fato_id", Type: SerialType(), Comment: "Chave surrogate do fato"},
			reference("tempo", "FK para tempo"),
			reference("localidade", "FK para localidade"),
			reference("tema", "FK para tema"),
			reference("ods", "FK para ODS"),
			reference("ies", "FK para IES"),
			reference("ppg", "FK para PPG"),
			reference("producao", "FK para produção"),
			reference("docente", "FK para docente"),
			required("ano", IntegerType(), "Ano de referência (degenerada)"),
			required("mes", IntegerType(), "Mês de referência (degenerada)"),

			metric("qtd_programas_mestrado", "Quantidade de programas de mestrado"),
			metric("qtd_programas_doutorado", "Quantidade de programas de doutorado"),
			metric("qtd_programas_nota_3", "Programas com nota 3"),
			metric("qtd_programas_nota_4", "Programas com nota 4"),
			metric("qtd_programas_nota_5", "Programas com nota 5"),
			metric("qtd_programas_nota_6_7", "Programas com nota 6 ou 7"),

			metric("qtd_docentes_permanentes", "Quantidade de docentes permanentes"),
			metric("qtd_docentes_colaboradores", "Quantidade de docentes colaboradores"),
			metric("qtd_docentes_visitantes", "Quantidade de docentes visitantes"),
			metric("qtd_bolsistas_produtividade", "Quantidade de bolsistas produtividade"),
			metric("qtd_doutores", "Quantidade de doutores"),

			metric("qtd_artigos_a1", "Artigos Qualis A1"),
			metric("qtd_artigos_a2", "Artigos Qualis A2"),
			metric("qtd_artigos_b1", "Artigos Qualis B1"),
			metric("qtd_artigos_b2", "Artigos Qualis B2"),
			metric("qtd_livros", "Quantidade de livros"),
			metric("qtd_capitulos", "Quantidade de capítulos"),
			metric("qtd_trabalhos_eventos", "Trabalhos em eventos"),

			metric("qtd_dissertacoes_defendidas", "Dissertações defendidas"),
			metric("qtd_teses_defendidas", "Teses defendidas"),
			metric("qtd_mestres_titulados", "Mestres titulados"),
			metric("qtd_doutores_titulados", "Doutores titulados"),

			amount("valor_financiamento_capes", "Financiamento CAPES (R$)"),
			amount("valor_financiamento_cnpq", "Financiamento CNPq (R$)"),
			amount("valor_outros_financiamentos", "Outros financiamentos (R$)"),

			{Name: "data_carga", Type: TimestampType(), Nullable: true, Default: "CURRENT_TIMESTAMP", Comment: "Data/hora da carga dos dados"},
		},
		Indexes: []*Index{{Name: "fato_ano_mes", Columns: []string{"ano", "mes"}}},
	}

	for _, d := range dims {
		fato.ForeignKeys = append(fato.ForeignKeys, &ForeignKey{Column: d.PrimaryKey, RefTable: d.Name})
	}

	b := NewBuilder(WarehouseName)
	for _, d := range dims {
		b.AddTable(d)
	}
	b.AddTable(fato)
	return b.Build()
}
