package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/pkg/models"
)

type salvarConfiguracaoRequest struct {
	Concurso   string `json:"concurso"`
	Cargo      string `json:"cargo"`
	Email      string `json:"email"`
	MeuApelido string `json:"meuApelido"`
}

type emailParceiroRequest struct {
	Email string `json:"email" binding:"required"`
}

type apelidoRequest struct {
	Apelido string `json:"apelido" binding:"required"`
}

func (s *Server) obterConfiguracao(c *gin.Context) {
	cfg, err := s.usuarios.ObterConfiguracao(c.Request.Context(), c.GetString(chaveUserID))
	if err != nil {
		s.responderErro(c, err)
		return
	}
	if cfg == nil {
		// Ausência de configuração não é erro
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) salvarConfiguracao(c *gin.Context) {
	var req salvarConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "corpo da requisição inválido"})
		return
	}

	userID := c.GetString(chaveUserID)
	email := req.Email
	if email == "" {
		email = c.GetString(chaveEmail)
	}

	// Preserva os campos de vínculo já gravados
	atual, err := s.usuarios.ObterConfiguracao(c.Request.Context(), userID)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	cfg := &models.ConfiguracaoUsuario{
		UserID:     userID,
		Concurso:   req.Concurso,
		Cargo:      req.Cargo,
		Email:      email,
		MeuApelido: req.MeuApelido,
	}
	if atual != nil {
		cfg.ParceiroEmail = atual.ParceiroEmail
		cfg.ApelidoParceiro = atual.ApelidoParceiro
		if cfg.MeuApelido == "" {
			cfg.MeuApelido = atual.MeuApelido
		}
	}

	if err := s.usuarios.SalvarConfiguracao(c.Request.Context(), cfg); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) definirEmailParceiro(c *gin.Context) {
	var req emailParceiroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "email é obrigatório"})
		return
	}
	if err := s.usuarios.DefinirEmailParceiro(c.Request.Context(), c.GetString(chaveUserID), req.Email); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) definirApelidoParceiro(c *gin.Context) {
	var req apelidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "apelido é obrigatório"})
		return
	}
	if err := s.usuarios.DefinirApelidoParceiro(c.Request.Context(), c.GetString(chaveUserID), req.Apelido); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) removerParceiro(c *gin.Context) {
	if err := s.usuarios.RemoverParceiro(c.Request.Context(), c.GetString(chaveUserID)); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) buscarUsuarioPorEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "email é obrigatório"})
		return
	}

	cfg, err := s.usuarios.BuscarUsuarioPorEmail(c.Request.Context(), email)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	if cfg == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	// Só o necessário para montar o vínculo; nada além de id, email e apelido
	c.JSON(http.StatusOK, gin.H{
		"userId":     cfg.UserID,
		"email":      cfg.Email,
		"meuApelido": cfg.MeuApelido,
	})
}
