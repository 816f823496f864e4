package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/service"
	"github.com/example/cadernoestudos/pkg/models"
)

type criarRevisaoRequest struct {
	EstudoID    string     `json:"estudoId" binding:"required"`
	DataRevisao *time.Time `json:"dataRevisao"`
}

type atualizarRevisaoRequest struct {
	Status      *string    `json:"status" binding:"omitempty,statusrevisao"`
	DataRevisao *time.Time `json:"dataRevisao"`
}

// revisaoResponse acrescenta o atraso calculado na leitura; ele nunca é
// armazenado.
type revisaoResponse struct {
	models.Revisao
	DiasAtraso int `json:"diasAtraso"`
}

func (s *Server) listarRevisoes(c *gin.Context) {
	alvo, ok := s.usuarioAlvo(c)
	if !ok {
		return
	}

	var revisoes []models.Revisao
	var err error
	if c.Query("pendentes") == "1" {
		revisoes, err = s.revisoes.BuscarRevisoesPendentes(c.Request.Context(), alvo)
	} else {
		revisoes, err = s.revisoes.BuscarRevisoesPorUsuario(c.Request.Context(), alvo)
	}
	if err != nil {
		s.responderErro(c, err)
		return
	}

	hoje := time.Now()
	resposta := make([]revisaoResponse, 0, len(revisoes))
	for _, revisao := range revisoes {
		resposta = append(resposta, revisaoResponse{
			Revisao:    revisao,
			DiasAtraso: service.CalcularDiasAtraso(revisao.DataRevisao, hoje),
		})
	}
	c.JSON(http.StatusOK, resposta)
}

func (s *Server) criarRevisao(c *gin.Context) {
	var req criarRevisaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "estudoId é obrigatório"})
		return
	}

	var dataRevisao time.Time
	if req.DataRevisao != nil {
		dataRevisao = *req.DataRevisao
	}

	id, err := s.revisoes.MarcarParaRevisao(c.Request.Context(), req.EstudoID, c.GetString(chaveUserID), dataRevisao)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) atualizarRevisao(c *gin.Context) {
	var req atualizarRevisaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "corpo da requisição inválido"})
		return
	}

	if !s.verificarDonoRevisao(c) {
		return
	}

	campos := map[string]interface{}{}
	if req.Status != nil {
		campos["status"] = *req.Status
	}
	if req.DataRevisao != nil {
		campos["dataRevisao"] = *req.DataRevisao
	}
	if len(campos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "nenhum campo para atualizar"})
		return
	}

	if err := s.revisoes.AtualizarRevisao(c.Request.Context(), c.Param("id"), campos); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) concluirRevisao(c *gin.Context) {
	if !s.verificarDonoRevisao(c) {
		return
	}
	if err := s.revisoes.ConcluirRevisao(c.Request.Context(), c.Param("id")); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deletarRevisao(c *gin.Context) {
	if !s.verificarDonoRevisao(c) {
		return
	}
	if err := s.revisoes.DeletarRevisao(c.Request.Context(), c.Param("id")); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) verificarDonoRevisao(c *gin.Context) bool {
	revisao, err := s.revisoes.BuscarRevisaoPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.responderErro(c, err)
		return false
	}
	if revisao.UserID != c.GetString(chaveUserID) {
		c.JSON(http.StatusForbidden, gin.H{"erro": "você não tem permissão para alterar esta revisão"})
		return false
	}
	return true
}
