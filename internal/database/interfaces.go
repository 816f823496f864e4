package database

import (
	"context"

	"github.com/example/cadernoestudos/pkg/models"
)

// Repositórios por coleção. Cada operação é uma única ida ao backend; não
// há fronteira transacional entre chamadas (último escritor vence nos mapas
// de resultados e comentários).

type EstudoRepository interface {
	Criar(ctx context.Context, estudo *models.Estudo) (string, error)
	Atualizar(ctx context.Context, id string, campos map[string]interface{}) error
	Deletar(ctx context.Context, id string) error
	BuscarPorID(ctx context.Context, id string) (*models.Estudo, error)
	// BuscarPorUsuario devolve os estudos do usuário, mais recentes primeiro.
	BuscarPorUsuario(ctx context.Context, userID string) ([]models.Estudo, error)
}

type RevisaoRepository interface {
	Criar(ctx context.Context, revisao *models.Revisao) (string, error)
	Atualizar(ctx context.Context, id string, campos map[string]interface{}) error
	Deletar(ctx context.Context, id string) error
	BuscarPorID(ctx context.Context, id string) (*models.Revisao, error)
	// Listagens ordenadas por dataRevisao ascendente (mais próxima primeiro).
	BuscarPorUsuario(ctx context.Context, userID string) ([]models.Revisao, error)
	BuscarPendentes(ctx context.Context, userID string) ([]models.Revisao, error)
}

type QuestaoRepository interface {
	Criar(ctx context.Context, questao *models.Questao) (string, error)
	Atualizar(ctx context.Context, id string, campos map[string]interface{}) error
	Deletar(ctx context.Context, id string) error
	BuscarPorID(ctx context.Context, id string) (*models.Questao, error)
	BuscarPorEstudo(ctx context.Context, estudoID string) ([]models.Questao, error)
	BuscarPorUsuario(ctx context.Context, userID string) ([]models.Questao, error)
	// RegistrarResultado grava resultados[userID] na granularidade do campo;
	// espelharLegado também grava o campo plano acertou (dono da questão).
	RegistrarResultado(ctx context.Context, questaoID, userID string, resultado models.Resultado, espelharLegado bool) error
	AdicionarComentario(ctx context.Context, questaoID string, comentario models.Comentario) error
}

type UsuarioRepository interface {
	Obter(ctx context.Context, userID string) (*models.ConfiguracaoUsuario, error)
	Salvar(ctx context.Context, cfg *models.ConfiguracaoUsuario) error
	AtualizarCampos(ctx context.Context, userID string, campos map[string]interface{}) error
	BuscarPorEmail(ctx context.Context, email string) (*models.ConfiguracaoUsuario, error)
	// ListarTodos alimenta a varredura de lembretes; exclui linhas artificiais.
	ListarTodos(ctx context.Context) ([]models.ConfiguracaoUsuario, error)
	Deletar(ctx context.Context, userID string) error
}

type ParceriaRepository interface {
	Criar(ctx context.Context, parceria *models.Parceria) (string, error)
	Atualizar(ctx context.Context, id string, campos map[string]interface{}) error
	BuscarPorID(ctx context.Context, id string) (*models.Parceria, error)
	// BuscarPorUsuario devolve parcerias em que o usuário aparece de
	// qualquer um dos lados.
	BuscarPorUsuario(ctx context.Context, userID string) ([]models.Parceria, error)
}

// Repositorios agrupa as implementações de um driver de armazenamento.
type Repositorios struct {
	Estudos   EstudoRepository
	Revisoes  RevisaoRepository
	Questoes  QuestaoRepository
	Usuarios  UsuarioRepository
	Parcerias ParceriaRepository
}
