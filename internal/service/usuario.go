package service

import (
	"context"
	"errors"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/logger"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/pkg/models"
)

// UsuarioService cobre o documento de configuração do usuário, incluindo os
// campos legados de vínculo de parceria espelhados pelo ParceriaService.
type UsuarioService struct {
	usuarios database.UsuarioRepository
}

func NewUsuarioService(repos *database.Repositorios) *UsuarioService {
	return &UsuarioService{usuarios: repos.Usuarios}
}

// ObterConfiguracao devolve nil sem erro quando o usuário ainda não salvou
// configuração; ausência não é falha para quem consome.
func (s *UsuarioService) ObterConfiguracao(ctx context.Context, userID string) (*models.ConfiguracaoUsuario, error) {
	cfg, err := s.usuarios.Obter(ctx, userID)
	if errors.Is(err, database.ErrNaoEncontrado) {
		return nil, nil
	}
	if err != nil {
		return nil, traduzir("erro ao buscar configuração", err)
	}
	return cfg, nil
}

// SalvarConfiguracao grava (upsert) o documento de configuração.
func (s *UsuarioService) SalvarConfiguracao(ctx context.Context, cfg *models.ConfiguracaoUsuario) error {
	if cfg == nil || cfg.UserID == "" {
		return erroValidacao("usuário não informado")
	}
	if cfg.Email != "" && !security.ValidarEmail(cfg.Email) {
		return erroValidacao("email inválido")
	}

	cfg.Concurso = security.Sanitizar(cfg.Concurso)
	cfg.Cargo = security.Sanitizar(cfg.Cargo)
	cfg.MeuApelido = security.Sanitizar(cfg.MeuApelido)
	cfg.ApelidoParceiro = security.Sanitizar(cfg.ApelidoParceiro)

	if err := s.usuarios.Salvar(ctx, cfg); err != nil {
		return traduzir("erro ao salvar configuração", err)
	}
	return nil
}

// DefinirEmailParceiro grava o ponteiro legado parceiroEmail. O vínculo
// gerenciado vive na parceria; este campo permanece pelos dados existentes.
func (s *UsuarioService) DefinirEmailParceiro(ctx context.Context, userID, email string) error {
	if email != "" && !security.ValidarEmail(email) {
		return erroValidacao("email inválido")
	}
	return s.atualizarOuCriar(ctx, userID, map[string]interface{}{"parceiroEmail": email})
}

func (s *UsuarioService) DefinirApelidoParceiro(ctx context.Context, userID, apelido string) error {
	return s.atualizarOuCriar(ctx, userID, map[string]interface{}{"apelidoParceiro": security.Sanitizar(apelido)})
}

func (s *UsuarioService) DefinirMeuApelido(ctx context.Context, userID, apelido string) error {
	return s.atualizarOuCriar(ctx, userID, map[string]interface{}{"meuApelido": security.Sanitizar(apelido)})
}

// RemoverParceiro limpa os campos de vínculo no documento do usuário.
func (s *UsuarioService) RemoverParceiro(ctx context.Context, userID string) error {
	campos := map[string]interface{}{
		"parceiroEmail":   "",
		"apelidoParceiro": "",
	}
	return s.atualizarOuCriar(ctx, userID, campos)
}

// BuscarUsuarioPorEmail resolve um email para a configuração do usuário.
// Devolve nil sem erro quando ninguém tem perfil salvo com aquele email.
// Linhas artificiais deixadas por uma revisão antiga do vínculo são podadas
// quando encontradas, e a busca responde como se não existissem.
func (s *UsuarioService) BuscarUsuarioPorEmail(ctx context.Context, email string) (*models.ConfiguracaoUsuario, error) {
	if !security.ValidarEmail(email) {
		return nil, erroValidacao("email inválido")
	}

	cfg, err := s.usuarios.BuscarPorEmail(ctx, email)
	if errors.Is(err, database.ErrNaoEncontrado) {
		return nil, nil
	}
	if err != nil {
		return nil, traduzir("erro ao buscar usuário", err)
	}

	if cfg.Artificial {
		if err := s.usuarios.Deletar(ctx, cfg.UserID); err != nil {
			logger.Warn("falha ao podar usuário artificial %s: %v", cfg.UserID, err)
		}
		return nil, nil
	}
	return cfg, nil
}

// atualizarOuCriar tenta a atualização parcial e, se o documento ainda não
// existe, cria um só com os campos pedidos.
func (s *UsuarioService) atualizarOuCriar(ctx context.Context, userID string, campos map[string]interface{}) error {
	if userID == "" {
		return erroValidacao("usuário não informado")
	}

	err := s.usuarios.AtualizarCampos(ctx, userID, campos)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNaoEncontrado) {
		return traduzir("erro ao atualizar configuração", err)
	}

	cfg := &models.ConfiguracaoUsuario{UserID: userID}
	aplicarCampos(cfg, campos)
	if err := s.usuarios.Salvar(ctx, cfg); err != nil {
		return traduzir("erro ao salvar configuração", err)
	}
	return nil
}

func aplicarCampos(cfg *models.ConfiguracaoUsuario, campos map[string]interface{}) {
	for campo, valor := range campos {
		texto, _ := valor.(string)
		switch campo {
		case "concurso":
			cfg.Concurso = texto
		case "cargo":
			cfg.Cargo = texto
		case "email":
			cfg.Email = texto
		case "meuApelido":
			cfg.MeuApelido = texto
		case "parceiroEmail":
			cfg.ParceiroEmail = texto
		case "apelidoParceiro":
			cfg.ApelidoParceiro = texto
		}
	}
}
