package service

import (
	"context"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/pkg/models"
)

// EstudoService cobre o caderno de estudos: cada operação é uma única ida ao
// backend, com validação e sanitização feitas antes de qualquer requisição.
type EstudoService struct {
	estudos database.EstudoRepository
}

func NewEstudoService(repos *database.Repositorios) *EstudoService {
	return &EstudoService{estudos: repos.Estudos}
}

// NovoEstudo agrupa os campos do formulário de cadastro. Concurso e Cargo são
// opcionais.
type NovoEstudo struct {
	UserID   string
	Materia  string
	Assunto  string
	Concurso string
	Cargo    string
}

func (s *EstudoService) CriarEstudo(ctx context.Context, novo NovoEstudo) (string, error) {
	if novo.UserID == "" {
		return "", erroValidacao("usuário não informado")
	}

	materia := security.Sanitizar(novo.Materia)
	assunto := security.Sanitizar(novo.Assunto)
	if !security.TamanhoEntre(materia, security.MateriaTamanhoMin, security.MateriaTamanhoMax) {
		return "", erroValidacao("matéria deve ter entre %d e %d caracteres", security.MateriaTamanhoMin, security.MateriaTamanhoMax)
	}
	if !security.TamanhoEntre(assunto, security.AssuntoTamanhoMin, security.AssuntoTamanhoMax) {
		return "", erroValidacao("assunto deve ter entre %d e %d caracteres", security.AssuntoTamanhoMin, security.AssuntoTamanhoMax)
	}

	estudo := &models.Estudo{
		Materia:  materia,
		Assunto:  assunto,
		Concurso: security.Sanitizar(novo.Concurso),
		Cargo:    security.Sanitizar(novo.Cargo),
		UserID:   novo.UserID,
	}
	id, err := s.estudos.Criar(ctx, estudo)
	if err != nil {
		return "", traduzir("erro ao salvar estudo", err)
	}
	return id, nil
}

// AtualizarEstudo aplica uma atualização parcial. Campos textuais presentes
// passam pela mesma sanitização e pelos mesmos limites da criação.
func (s *EstudoService) AtualizarEstudo(ctx context.Context, id string, campos map[string]interface{}) error {
	if id == "" {
		return erroValidacao("estudo não informado")
	}

	for _, campo := range []string{"materia", "assunto", "concurso", "cargo"} {
		valor, presente := campos[campo]
		if !presente {
			continue
		}
		texto, ok := valor.(string)
		if !ok {
			return erroValidacao("campo %s deve ser texto", campo)
		}
		campos[campo] = security.Sanitizar(texto)
	}
	if materia, ok := campos["materia"].(string); ok {
		if !security.TamanhoEntre(materia, security.MateriaTamanhoMin, security.MateriaTamanhoMax) {
			return erroValidacao("matéria deve ter entre %d e %d caracteres", security.MateriaTamanhoMin, security.MateriaTamanhoMax)
		}
	}
	if assunto, ok := campos["assunto"].(string); ok {
		if !security.TamanhoEntre(assunto, security.AssuntoTamanhoMin, security.AssuntoTamanhoMax) {
			return erroValidacao("assunto deve ter entre %d e %d caracteres", security.AssuntoTamanhoMin, security.AssuntoTamanhoMax)
		}
	}

	if err := s.estudos.Atualizar(ctx, id, campos); err != nil {
		return traduzir("erro ao atualizar estudo", err)
	}
	return nil
}

func (s *EstudoService) DeletarEstudo(ctx context.Context, id string) error {
	if id == "" {
		return erroValidacao("estudo não informado")
	}
	if err := s.estudos.Deletar(ctx, id); err != nil {
		return traduzir("erro ao excluir estudo", err)
	}
	return nil
}

func (s *EstudoService) BuscarEstudoPorID(ctx context.Context, id string) (*models.Estudo, error) {
	estudo, err := s.estudos.BuscarPorID(ctx, id)
	if err != nil {
		return nil, traduzir("erro ao buscar estudo", err)
	}
	return estudo, nil
}

// BuscarEstudosPorUsuario lista os estudos do usuário, mais recentes primeiro.
func (s *EstudoService) BuscarEstudosPorUsuario(ctx context.Context, userID string) ([]models.Estudo, error) {
	estudos, err := s.estudos.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar estudos", err)
	}
	return estudos, nil
}
