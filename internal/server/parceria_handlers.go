package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type solicitarParceriaRequest struct {
	ParceiroEmail string `json:"parceiroEmail" binding:"required"`
}

func (s *Server) solicitarParceria(c *gin.Context) {
	var req solicitarParceriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "parceiroEmail é obrigatório"})
		return
	}

	parceria, err := s.parcerias.SolicitarParceria(
		c.Request.Context(),
		c.GetString(chaveUserID),
		c.GetString(chaveEmail),
		req.ParceiroEmail,
	)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, parceria)
}

func (s *Server) buscarParceriaAtiva(c *gin.Context) {
	parceria, err := s.parcerias.BuscarParceriaAtiva(c.Request.Context(), c.GetString(chaveUserID))
	if err != nil {
		s.responderErro(c, err)
		return
	}
	if parceria == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, parceria)
}

func (s *Server) listarSolicitacoesPendentes(c *gin.Context) {
	pendentes, err := s.parcerias.BuscarSolicitacoesPendentes(c.Request.Context(), c.GetString(chaveUserID))
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pendentes)
}

func (s *Server) aceitarParceria(c *gin.Context) {
	if err := s.parcerias.AceitarParceria(c.Request.Context(), c.Param("id"), c.GetString(chaveUserID)); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) revogarParceria(c *gin.Context) {
	if err := s.parcerias.RevogarParceria(c.Request.Context(), c.Param("id"), c.GetString(chaveUserID)); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
