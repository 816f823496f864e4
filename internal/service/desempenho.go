package service

import (
	"context"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/pkg/models"
)

// DesempenhoService agrega as estatísticas do painel a partir das três
// coleções do usuário. Questões e revisões órfãs (estudo já excluído) são
// ignoradas silenciosamente; não há cascata na exclusão de estudos.
type DesempenhoService struct {
	estudos  database.EstudoRepository
	revisoes database.RevisaoRepository
	questoes database.QuestaoRepository
}

func NewDesempenhoService(repos *database.Repositorios) *DesempenhoService {
	return &DesempenhoService{
		estudos:  repos.Estudos,
		revisoes: repos.Revisoes,
		questoes: repos.Questoes,
	}
}

// Calcular monta o agregado de desempenho do usuário. O desfecho de cada
// questão vem do mapa resultados, com retorno ao campo legado acertou quando
// o usuário é o dono; questões sem desfecho não entram na taxa de acerto.
func (s *DesempenhoService) Calcular(ctx context.Context, userID string) (*models.Desempenho, error) {
	if userID == "" {
		return nil, erroValidacao("usuário não informado")
	}

	estudos, err := s.estudos.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar estudos", err)
	}
	revisoes, err := s.revisoes.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar revisões", err)
	}
	questoes, err := s.questoes.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar questões", err)
	}

	materiaPorEstudo := make(map[string]string, len(estudos))
	for _, estudo := range estudos {
		materiaPorEstudo[estudo.ID] = estudo.Materia
	}

	desempenho := &models.Desempenho{
		TotalAssuntos:      len(estudos),
		TotalRevisoes:      len(revisoes),
		QuestoesPorMateria: make(map[string]models.DesempenhoMateria),
	}

	for _, revisao := range revisoes {
		if revisao.Status == models.RevisaoConcluida {
			desempenho.RevisoesConcluidas++
		} else {
			desempenho.RevisoesPendentes++
		}
	}

	for i := range questoes {
		questao := &questoes[i]
		materia, temEstudo := materiaPorEstudo[questao.EstudoID]
		if !temEstudo {
			// Órfã: estudo pai excluído
			continue
		}
		desempenho.TotalQuestoes++

		acertou, respondida := questao.ResultadoDoUsuario(userID)
		if !respondida {
			continue
		}
		porMateria := desempenho.QuestoesPorMateria[materia]
		if acertou {
			desempenho.QuestoesAcertadas++
			porMateria.Acertadas++
		} else {
			desempenho.QuestoesErradas++
			porMateria.Erradas++
		}
		desempenho.QuestoesPorMateria[materia] = porMateria
	}

	respondidas := desempenho.QuestoesAcertadas + desempenho.QuestoesErradas
	if respondidas > 0 {
		desempenho.TaxaAcerto = float64(desempenho.QuestoesAcertadas) / float64(respondidas) * 100
	}
	return desempenho, nil
}
