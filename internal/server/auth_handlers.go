package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/security"
)

type credenciaisRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

func (s *Server) signup(c *gin.Context) {
	var req credenciaisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "email e senha são obrigatórios"})
		return
	}
	if !security.ValidarEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "email inválido"})
		return
	}
	if resultado := security.ValidarSenha(req.Senha); !resultado.Valida {
		c.JSON(http.StatusBadRequest, gin.H{
			"erro":  "senha fraca",
			"erros": resultado.Erros,
		})
		return
	}

	sessao, err := s.provider.Cadastrar(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessao)
}

func (s *Server) login(c *gin.Context) {
	var req credenciaisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "email e senha são obrigatórios"})
		return
	}

	sessao, err := s.provider.Entrar(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		s.responderErro(c, err)
		return
	}

	// Login bem-sucedido zera a contagem de tentativas da origem
	s.limiterLogin.Reiniciar(c.ClientIP())
	c.JSON(http.StatusOK, sessao)
}
