package service

import (
	"context"
	"math"
	"time"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/pkg/models"
)

// Escada de intervalos da repetição espaçada, em dias a partir do último
// estudo. Revisões além da última posição repetem o maior intervalo.
var IntervalosRevisao = []int{1, 2, 3, 7, 15, 25, 40}

// DiasRevisaoPadrao é o deslocamento sugerido quando o usuário não escolhe
// uma data.
const DiasRevisaoPadrao = 7

// RevisaoService agenda e conclui revisões de estudos.
type RevisaoService struct {
	revisoes database.RevisaoRepository
	agora    func() time.Time
}

// NewRevisaoService cria o serviço. agora pode ser nil para usar time.Now.
func NewRevisaoService(repos *database.Repositorios, agora func() time.Time) *RevisaoService {
	if agora == nil {
		agora = time.Now
	}
	return &RevisaoService{revisoes: repos.Revisoes, agora: agora}
}

// MarcarParaRevisao agenda uma revisão para um estudo. Uma dataRevisao zero
// usa o deslocamento padrão; o último estudo é registrado como agora.
func (s *RevisaoService) MarcarParaRevisao(ctx context.Context, estudoID, userID string, dataRevisao time.Time) (string, error) {
	if estudoID == "" || userID == "" {
		return "", erroValidacao("estudo e usuário são obrigatórios")
	}

	hoje := s.agora()
	if dataRevisao.IsZero() {
		dataRevisao = hoje.AddDate(0, 0, DiasRevisaoPadrao)
	}

	revisao := &models.Revisao{
		EstudoID:         estudoID,
		UserID:           userID,
		DataUltimoEstudo: hoje,
		DataRevisao:      dataRevisao,
		Status:           models.RevisaoPendente,
	}
	id, err := s.revisoes.Criar(ctx, revisao)
	if err != nil {
		return "", traduzir("erro ao agendar revisão", err)
	}
	return id, nil
}

// ConcluirRevisao marca a revisão como concluída. A operação é idempotente:
// concluir uma revisão já concluída não é erro.
func (s *RevisaoService) ConcluirRevisao(ctx context.Context, id string) error {
	if id == "" {
		return erroValidacao("revisão não informada")
	}
	campos := map[string]interface{}{"status": models.RevisaoConcluida}
	if err := s.revisoes.Atualizar(ctx, id, campos); err != nil {
		return traduzir("erro ao concluir revisão", err)
	}
	return nil
}

func (s *RevisaoService) AtualizarRevisao(ctx context.Context, id string, campos map[string]interface{}) error {
	if id == "" {
		return erroValidacao("revisão não informada")
	}
	if valor, presente := campos["status"]; presente {
		status, ok := valor.(string)
		if !ok || (status != models.RevisaoPendente && status != models.RevisaoConcluida) {
			return erroValidacao("status deve ser %s ou %s", models.RevisaoPendente, models.RevisaoConcluida)
		}
	}
	if err := s.revisoes.Atualizar(ctx, id, campos); err != nil {
		return traduzir("erro ao atualizar revisão", err)
	}
	return nil
}

func (s *RevisaoService) DeletarRevisao(ctx context.Context, id string) error {
	if id == "" {
		return erroValidacao("revisão não informada")
	}
	if err := s.revisoes.Deletar(ctx, id); err != nil {
		return traduzir("erro ao excluir revisão", err)
	}
	return nil
}

func (s *RevisaoService) BuscarRevisaoPorID(ctx context.Context, id string) (*models.Revisao, error) {
	revisao, err := s.revisoes.BuscarPorID(ctx, id)
	if err != nil {
		return nil, traduzir("erro ao buscar revisão", err)
	}
	return revisao, nil
}

// BuscarRevisoesPorUsuario lista todas as revisões, mais próximas primeiro.
func (s *RevisaoService) BuscarRevisoesPorUsuario(ctx context.Context, userID string) ([]models.Revisao, error) {
	revisoes, err := s.revisoes.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar revisões", err)
	}
	return revisoes, nil
}

func (s *RevisaoService) BuscarRevisoesPendentes(ctx context.Context, userID string) ([]models.Revisao, error) {
	revisoes, err := s.revisoes.BuscarPendentes(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar revisões pendentes", err)
	}
	return revisoes, nil
}

// CalcularDiasAtraso devolve há quantos dias inteiros a revisão venceu.
// Datas futuras produzem valor não positivo. O atraso é calculado na
// leitura, nunca armazenado.
func CalcularDiasAtraso(dataRevisao, hoje time.Time) int {
	horas := hoje.Sub(dataRevisao).Hours()
	return int(math.Ceil(horas / 24))
}

// SugerirProximaData aplica a escada de intervalos sobre a data do último
// estudo, conforme o número de revisões já concluídas do assunto.
func SugerirProximaData(dataUltimoEstudo time.Time, revisoesConcluidas int) time.Time {
	indice := revisoesConcluidas
	if indice < 0 {
		indice = 0
	}
	if indice >= len(IntervalosRevisao) {
		indice = len(IntervalosRevisao) - 1
	}
	return dataUltimoEstudo.AddDate(0, 0, IntervalosRevisao[indice])
}
