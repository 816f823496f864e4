package models

// DesempenhoMateria acumula acertos e erros de uma matéria.
type DesempenhoMateria struct {
	Acertadas int `json:"acertadas"`
	Erradas   int `json:"erradas"`
}

// Desempenho agrega as estatísticas pessoais exibidas no painel.
type Desempenho struct {
	TotalAssuntos      int                          `json:"totalAssuntos"`
	TotalRevisoes      int                          `json:"totalRevisoes"`
	RevisoesConcluidas int                          `json:"revisoesConcluidas"`
	RevisoesPendentes  int                          `json:"revisoesPendentes"`
	TotalQuestoes      int                          `json:"totalQuestoes"`
	QuestoesAcertadas  int                          `json:"questoesAcertadas"`
	QuestoesErradas    int                          `json:"questoesErradas"`
	TaxaAcerto         float64                      `json:"taxaAcerto"`
	QuestoesPorMateria map[string]DesempenhoMateria `json:"questoesPorMateria"`
}
