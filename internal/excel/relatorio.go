package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/example/cadernoestudos/pkg/models"
)

// RelatorioDesempenho monta a planilha de desempenho com uma aba de resumo e
// uma aba com o detalhamento por matéria.
func RelatorioDesempenho(desempenho *models.Desempenho) (*excelize.File, error) {
	f := excelize.NewFile()

	const resumo = "Resumo"
	if err := f.SetSheetName("Sheet1", resumo); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %v", err)
	}

	linhasResumo := [][]interface{}{
		{"Indicador", "Valor"},
		{"Assuntos estudados", desempenho.TotalAssuntos},
		{"Revisões agendadas", desempenho.TotalRevisoes},
		{"Revisões concluídas", desempenho.RevisoesConcluidas},
		{"Revisões pendentes", desempenho.RevisoesPendentes},
		{"Questões registradas", desempenho.TotalQuestoes},
		{"Questões acertadas", desempenho.QuestoesAcertadas},
		{"Questões erradas", desempenho.QuestoesErradas},
		{"Taxa de acerto (%)", fmt.Sprintf("%.1f", desempenho.TaxaAcerto)},
	}
	for i, linha := range linhasResumo {
		celula, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(resumo, celula, &linha); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %v", err)
		}
	}

	const porMateria = "Por matéria"
	if _, err := f.NewSheet(porMateria); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %v", err)
	}

	materias := make([]string, 0, len(desempenho.QuestoesPorMateria))
	for materia := range desempenho.QuestoesPorMateria {
		materias = append(materias, materia)
	}
	sort.Strings(materias)

	cabecalho := []interface{}{"Matéria", "Acertadas", "Erradas"}
	if err := f.SetSheetRow(porMateria, "A1", &cabecalho); err != nil {
		return nil, fmt.Errorf("failed to write header: %v", err)
	}
	for i, materia := range materias {
		contagem := desempenho.QuestoesPorMateria[materia]
		linha := []interface{}{materia, contagem.Acertadas, contagem.Erradas}
		celula, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(porMateria, celula, &linha); err != nil {
			return nil, fmt.Errorf("failed to write row: %v", err)
		}
	}

	return f, nil
}
