package service

import (
	"context"
	"strings"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/logger"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/pkg/models"
)

// ParceriaService gerencia o vínculo de estudo entre dois usuários como uma
// relação explícita com ciclo de vida próprio (pendente -> ativa ->
// revogada). Os campos legados parceiroEmail/apelidoParceiro do documento de
// configuração são espelhados a cada transição, para que dados já gravados
// continuem fazendo sentido para leitores antigos.
type ParceriaService struct {
	parcerias database.ParceriaRepository
	usuarios  *UsuarioService
}

func NewParceriaService(repos *database.Repositorios, usuarios *UsuarioService) *ParceriaService {
	return &ParceriaService{parcerias: repos.Parcerias, usuarios: usuarios}
}

// SolicitarParceria abre um convite de parceria para o dono do email
// informado. O convidado precisa ter perfil salvo; não há auto-parceria nem
// convite duplicado enquanto outro vínculo não revogado existir entre os dois.
func (s *ParceriaService) SolicitarParceria(ctx context.Context, userID, userEmail, emailParceiro string) (*models.Parceria, error) {
	if userID == "" {
		return nil, erroValidacao("usuário não informado")
	}
	emailParceiro = strings.TrimSpace(emailParceiro)
	if !security.ValidarEmail(emailParceiro) {
		return nil, erroValidacao("email do parceiro inválido")
	}
	if strings.EqualFold(emailParceiro, userEmail) {
		return nil, erroValidacao("não é possível criar parceria consigo mesmo")
	}

	alvo, err := s.usuarios.BuscarUsuarioPorEmail(ctx, emailParceiro)
	if err != nil {
		return nil, err
	}
	if alvo == nil {
		return nil, erroValidacao("nenhum usuário com este email possui perfil salvo")
	}

	existentes, err := s.parcerias.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao verificar parcerias", err)
	}
	for i := range existentes {
		p := &existentes[i]
		if p.Status != models.ParceriaRevogada && p.Envolve(alvo.UserID) {
			return nil, erroValidacao("já existe uma parceria com este usuário")
		}
	}

	parceria := &models.Parceria{
		SolicitanteID:    userID,
		SolicitanteEmail: userEmail,
		ParceiroID:       alvo.UserID,
		ParceiroEmail:    emailParceiro,
		Status:           models.ParceriaPendente,
	}
	if _, err := s.parcerias.Criar(ctx, parceria); err != nil {
		return nil, traduzir("erro ao criar parceria", err)
	}
	return parceria, nil
}

// AceitarParceria ativa um convite pendente. Só o convidado pode aceitar.
func (s *ParceriaService) AceitarParceria(ctx context.Context, id, userID string) error {
	parceria, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if parceria.ParceiroID != userID {
		return erroValidacao("apenas o convidado pode aceitar a parceria")
	}
	if parceria.Status != models.ParceriaPendente {
		return erroValidacao("parceria não está pendente")
	}

	campos := map[string]interface{}{"status": models.ParceriaAtiva}
	if err := s.parcerias.Atualizar(ctx, id, campos); err != nil {
		return traduzir("erro ao aceitar parceria", err)
	}

	s.espelharVinculo(ctx, parceria.SolicitanteID, parceria.ParceiroEmail)
	s.espelharVinculo(ctx, parceria.ParceiroID, parceria.SolicitanteEmail)
	return nil
}

// RevogarParceria encerra o vínculo. Qualquer um dos dois lados pode revogar,
// em qualquer estado não revogado; revogar de novo não é erro.
func (s *ParceriaService) RevogarParceria(ctx context.Context, id, userID string) error {
	parceria, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if !parceria.Envolve(userID) {
		return erroValidacao("usuário não participa desta parceria")
	}
	if parceria.Status == models.ParceriaRevogada {
		return nil
	}

	campos := map[string]interface{}{"status": models.ParceriaRevogada}
	if err := s.parcerias.Atualizar(ctx, id, campos); err != nil {
		return traduzir("erro ao revogar parceria", err)
	}

	if err := s.usuarios.RemoverParceiro(ctx, parceria.SolicitanteID); err != nil {
		logger.Warn("falha ao limpar vínculo legado de %s: %v", parceria.SolicitanteID, err)
	}
	if err := s.usuarios.RemoverParceiro(ctx, parceria.ParceiroID); err != nil {
		logger.Warn("falha ao limpar vínculo legado de %s: %v", parceria.ParceiroID, err)
	}
	return nil
}

// BuscarParceriaAtiva devolve a parceria ativa do usuário, ou nil.
func (s *ParceriaService) BuscarParceriaAtiva(ctx context.Context, userID string) (*models.Parceria, error) {
	parcerias, err := s.parcerias.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar parcerias", err)
	}
	for i := range parcerias {
		if parcerias[i].Status == models.ParceriaAtiva {
			return &parcerias[i], nil
		}
	}
	return nil, nil
}

// BuscarSolicitacoesPendentes lista os convites ainda não respondidos em que
// o usuário é o convidado.
func (s *ParceriaService) BuscarSolicitacoesPendentes(ctx context.Context, userID string) ([]models.Parceria, error) {
	parcerias, err := s.parcerias.BuscarPorUsuario(ctx, userID)
	if err != nil {
		return nil, traduzir("erro ao listar parcerias", err)
	}
	var pendentes []models.Parceria
	for i := range parcerias {
		if parcerias[i].Status == models.ParceriaPendente && parcerias[i].ParceiroID == userID {
			pendentes = append(pendentes, parcerias[i])
		}
	}
	return pendentes, nil
}

func (s *ParceriaService) buscar(ctx context.Context, id string) (*models.Parceria, error) {
	if id == "" {
		return nil, erroValidacao("parceria não informada")
	}
	parceria, err := s.parcerias.BuscarPorID(ctx, id)
	if err != nil {
		return nil, traduzir("erro ao buscar parceria", err)
	}
	return parceria, nil
}

// espelharVinculo grava o ponteiro legado no documento de configuração; a
// falha não desfaz a ativação, só fica registrada.
func (s *ParceriaService) espelharVinculo(ctx context.Context, userID, emailParceiro string) {
	if err := s.usuarios.DefinirEmailParceiro(ctx, userID, emailParceiro); err != nil {
		logger.Warn("falha ao espelhar vínculo legado de %s: %v", userID, err)
	}
}
