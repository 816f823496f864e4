package excel

import (
	"testing"

	"github.com/example/cadernoestudos/pkg/models"
)

func TestRelatorioDesempenho(t *testing.T) {
	desempenho := &models.Desempenho{
		TotalAssuntos:      2,
		TotalRevisoes:      3,
		RevisoesConcluidas: 1,
		RevisoesPendentes:  2,
		TotalQuestoes:      4,
		QuestoesAcertadas:  3,
		QuestoesErradas:    1,
		TaxaAcerto:         75,
		QuestoesPorMateria: map[string]models.DesempenhoMateria{
			"Português":  {Acertadas: 2, Erradas: 0},
			"Matemática": {Acertadas: 1, Erradas: 1},
		},
	}

	f, err := RelatorioDesempenho(desempenho)
	if err != nil {
		t.Fatalf("RelatorioDesempenho: %v", err)
	}
	defer f.Close()

	valor, err := f.GetCellValue("Resumo", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if valor != "2" {
		t.Errorf("assuntos estudados = %q, esperava 2", valor)
	}

	linhas, err := f.GetRows("Por matéria")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	// Cabeçalho + duas matérias, em ordem alfabética
	if len(linhas) != 3 {
		t.Fatalf("esperava 3 linhas, veio %d", len(linhas))
	}
	if linhas[1][0] != "Matemática" || linhas[2][0] != "Português" {
		t.Errorf("ordem das matérias: %v", linhas)
	}
}
