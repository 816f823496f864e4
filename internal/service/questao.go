package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/pkg/models"
)

// QuestaoService cobre o caderno de erros. Resultados são gravados por
// usuário no mapa resultados, permitindo desfechos independentes de dono e
// parceiro sobre a mesma questão compartilhada.
type QuestaoService struct {
	questoes database.QuestaoRepository
	agora    func() time.Time
}

// NewQuestaoService cria o serviço. agora pode ser nil para usar time.Now.
func NewQuestaoService(repos *database.Repositorios, agora func() time.Time) *QuestaoService {
	if agora == nil {
		agora = time.Now
	}
	return &QuestaoService{questoes: repos.Questoes, agora: agora}
}

// NovaQuestao agrupa os campos do formulário do caderno de erros.
type NovaQuestao struct {
	UserID     string
	EstudoID   string
	Enunciado  string
	Comentario string
}

func (s *QuestaoService) CriarQuestao(ctx context.Context, nova NovaQuestao) (string, error) {
	if nova.UserID == "" || nova.EstudoID == "" {
		return "", erroValidacao("usuário e estudo são obrigatórios")
	}

	enunciado := security.Sanitizar(nova.Enunciado)
	comentario := security.Sanitizar(nova.Comentario)
	if !security.TamanhoEntre(enunciado, security.EnunciadoTamanhoMin, security.EnunciadoTamanhoMax) {
		return "", erroValidacao("enunciado deve ter entre %d e %d caracteres", security.EnunciadoTamanhoMin, security.EnunciadoTamanhoMax)
	}
	if !security.TamanhoEntre(comentario, 0, security.ComentarioTamanhoMax) {
		return "", erroValidacao("comentário deve ter no máximo %d caracteres", security.ComentarioTamanhoMax)
	}

	questao := &models.Questao{
		EstudoID:   nova.EstudoID,
		UserID:     nova.UserID,
		Enunciado:  enunciado,
		Comentario: comentario,
	}
	id, err := s.questoes.Criar(ctx, questao)
	if err != nil {
		return "", traduzir("erro ao salvar questão", err)
	}
	return id, nil
}

func (s *QuestaoService) AtualizarQuestao(ctx context.Context, id string, campos map[string]interface{}) error {
	if id == "" {
		return erroValidacao("questão não informada")
	}

	if valor, presente := campos["enunciado"]; presente {
		texto, ok := valor.(string)
		if !ok {
			return erroValidacao("campo enunciado deve ser texto")
		}
		texto = security.Sanitizar(texto)
		if !security.TamanhoEntre(texto, security.EnunciadoTamanhoMin, security.EnunciadoTamanhoMax) {
			return erroValidacao("enunciado deve ter entre %d e %d caracteres", security.EnunciadoTamanhoMin, security.EnunciadoTamanhoMax)
		}
		campos["enunciado"] = texto
	}
	if valor, presente := campos["comentario"]; presente {
		texto, ok := valor.(string)
		if !ok {
			return erroValidacao("campo comentario deve ser texto")
		}
		texto = security.Sanitizar(texto)
		if !security.TamanhoEntre(texto, 0, security.ComentarioTamanhoMax) {
			return erroValidacao("comentário deve ter no máximo %d caracteres", security.ComentarioTamanhoMax)
		}
		campos["comentario"] = texto
	}

	if err := s.questoes.Atualizar(ctx, id, campos); err != nil {
		return traduzir("erro ao atualizar questão", err)
	}
	return nil
}

func (s *QuestaoService) DeletarQuestao(ctx context.Context, id string) error {
	if id == "" {
		return erroValidacao("questão não informada")
	}
	if err := s.questoes.Deletar(ctx, id); err != nil {
		return traduzir("erro ao excluir questão", err)
	}
	return nil
}

func (s *QuestaoService) BuscarQuestaoPorID(ctx context.Context, id string) (*models.Questao, error) {
	questao, err := s.questoes.BuscarPorID(ctx, id)
	if err != nil {
		return nil, traduzir("erro ao buscar questão", err)
	}
	return questao, nil
}

func (s *QuestaoService) BuscarQuestoesPorEstudo(ctx context.Context, estudoID string) ([]models.Questao, error) {
	questoes, err := s.questoes.BuscarPorEstudo(ctx, estudoID)
	if err != nil {
		return nil, traduzir("erro ao listar questões", err)
	}
	return questoes, nil
}

func (s *QuestaoService) BuscarQuestoesPorUsuario(ctx context.Context, userID string) ([]models.Questao, error) {
	questoes, err := s.questoes.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar questões", err)
	}
	return questoes, nil
}

// MarcarResultado registra o desfecho do usuário em resultados[usuarioId].
// Quando o usuário é o dono da questão, o campo legado acertou é espelhado
// para manter os dados compatíveis com leitores antigos.
func (s *QuestaoService) MarcarResultado(ctx context.Context, questaoID, usuarioID string, acertou bool) error {
	if questaoID == "" || usuarioID == "" {
		return erroValidacao("questão e usuário são obrigatórios")
	}

	questao, err := s.questoes.BuscarPorID(ctx, questaoID)
	if err != nil {
		return traduzir("erro ao buscar questão", err)
	}

	resultado := models.Resultado{Acertou: acertou, Data: s.agora()}
	espelharLegado := usuarioID == questao.UserID
	if err := s.questoes.RegistrarResultado(ctx, questaoID, usuarioID, resultado, espelharLegado); err != nil {
		return traduzir("erro ao registrar resultado", err)
	}
	return nil
}

// AdicionarComentario acrescenta um comentário à sequência canônica da
// questão, já na forma nova (id próprio, autor e apelido explícitos).
func (s *QuestaoService) AdicionarComentario(ctx context.Context, questaoID, autorID, apelido, texto string) error {
	if questaoID == "" || autorID == "" {
		return erroValidacao("questão e autor são obrigatórios")
	}

	limpo, err := security.SanitizarEValidar(texto)
	if err != nil {
		return erroValidacao("comentário vazio")
	}
	if !security.TamanhoEntre(limpo, 1, security.ComentarioTamanhoMax) {
		return erroValidacao("comentário deve ter no máximo %d caracteres", security.ComentarioTamanhoMax)
	}

	comentario := models.Comentario{
		ID:      uuid.NewString(),
		AutorID: autorID,
		Apelido: security.Sanitizar(apelido),
		Texto:   limpo,
		Data:    s.agora(),
	}
	if err := s.questoes.AdicionarComentario(ctx, questaoID, comentario); err != nil {
		return traduzir("erro ao adicionar comentário", err)
	}
	return nil
}
