package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/service"
)

type criarEstudoRequest struct {
	Materia  string `json:"materia" binding:"required"`
	Assunto  string `json:"assunto" binding:"required"`
	Concurso string `json:"concurso"`
	Cargo    string `json:"cargo"`
}

type atualizarEstudoRequest struct {
	Materia  *string `json:"materia"`
	Assunto  *string `json:"assunto"`
	Concurso *string `json:"concurso"`
	Cargo    *string `json:"cargo"`
}

func (s *Server) listarEstudos(c *gin.Context) {
	alvo, ok := s.usuarioAlvo(c)
	if !ok {
		return
	}
	estudos, err := s.estudos.BuscarEstudosPorUsuario(c.Request.Context(), alvo)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, estudos)
}

func (s *Server) criarEstudo(c *gin.Context) {
	var req criarEstudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "matéria e assunto são obrigatórios"})
		return
	}

	id, err := s.estudos.CriarEstudo(c.Request.Context(), service.NovoEstudo{
		UserID:   c.GetString(chaveUserID),
		Materia:  req.Materia,
		Assunto:  req.Assunto,
		Concurso: req.Concurso,
		Cargo:    req.Cargo,
	})
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) buscarEstudo(c *gin.Context) {
	estudo, err := s.estudos.BuscarEstudoPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.responderErro(c, err)
		return
	}
	if !s.podeLer(c, estudo.UserID) {
		return
	}
	c.JSON(http.StatusOK, estudo)
}

func (s *Server) atualizarEstudo(c *gin.Context) {
	var req atualizarEstudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "corpo da requisição inválido"})
		return
	}

	if !s.verificarDonoEstudo(c) {
		return
	}

	campos := map[string]interface{}{}
	if req.Materia != nil {
		campos["materia"] = *req.Materia
	}
	if req.Assunto != nil {
		campos["assunto"] = *req.Assunto
	}
	if req.Concurso != nil {
		campos["concurso"] = *req.Concurso
	}
	if req.Cargo != nil {
		campos["cargo"] = *req.Cargo
	}
	if len(campos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "nenhum campo para atualizar"})
		return
	}

	if err := s.estudos.AtualizarEstudo(c.Request.Context(), c.Param("id"), campos); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deletarEstudo(c *gin.Context) {
	if !s.verificarDonoEstudo(c) {
		return
	}
	if err := s.estudos.DeletarEstudo(c.Request.Context(), c.Param("id")); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// verificarDonoEstudo garante que só o dono muta o registro; a visibilidade
// de parceiro é somente leitura.
func (s *Server) verificarDonoEstudo(c *gin.Context) bool {
	estudo, err := s.estudos.BuscarEstudoPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.responderErro(c, err)
		return false
	}
	if estudo.UserID != c.GetString(chaveUserID) {
		c.JSON(http.StatusForbidden, gin.H{"erro": "você não tem permissão para alterar este estudo"})
		return false
	}
	return true
}
