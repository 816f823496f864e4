package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/service"
	"github.com/example/cadernoestudos/pkg/models"
)

type criarQuestaoRequest struct {
	EstudoID   string `json:"estudoId" binding:"required"`
	Enunciado  string `json:"enunciado" binding:"required"`
	Comentario string `json:"comentario"`
}

type atualizarQuestaoRequest struct {
	Enunciado  *string `json:"enunciado"`
	Comentario *string `json:"comentario"`
}

type marcarResultadoRequest struct {
	Acertou *bool `json:"acertou" binding:"required"`
}

type adicionarComentarioRequest struct {
	Texto string `json:"texto" binding:"required"`
}

func (s *Server) listarQuestoes(c *gin.Context) {
	alvo, ok := s.usuarioAlvo(c)
	if !ok {
		return
	}

	var questoes []models.Questao
	var err error
	if estudoID := c.Query("estudoId"); estudoID != "" {
		estudo, errEstudo := s.estudos.BuscarEstudoPorID(c.Request.Context(), estudoID)
		if errEstudo != nil {
			s.responderErro(c, errEstudo)
			return
		}
		if !s.podeLer(c, estudo.UserID) {
			return
		}
		questoes, err = s.questoes.BuscarQuestoesPorEstudo(c.Request.Context(), estudoID)
	} else {
		questoes, err = s.questoes.BuscarQuestoesPorUsuario(c.Request.Context(), alvo)
	}
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, questoes)
}

func (s *Server) criarQuestao(c *gin.Context) {
	var req criarQuestaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "estudoId e enunciado são obrigatórios"})
		return
	}

	id, err := s.questoes.CriarQuestao(c.Request.Context(), service.NovaQuestao{
		UserID:     c.GetString(chaveUserID),
		EstudoID:   req.EstudoID,
		Enunciado:  req.Enunciado,
		Comentario: req.Comentario,
	})
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) buscarQuestao(c *gin.Context) {
	questao, err := s.questoes.BuscarQuestaoPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.responderErro(c, err)
		return
	}
	if !s.podeLer(c, questao.UserID) {
		return
	}
	c.JSON(http.StatusOK, questao)
}

func (s *Server) atualizarQuestao(c *gin.Context) {
	var req atualizarQuestaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "corpo da requisição inválido"})
		return
	}

	if !s.verificarDonoQuestao(c) {
		return
	}

	campos := map[string]interface{}{}
	if req.Enunciado != nil {
		campos["enunciado"] = *req.Enunciado
	}
	if req.Comentario != nil {
		campos["comentario"] = *req.Comentario
	}
	if len(campos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "nenhum campo para atualizar"})
		return
	}

	if err := s.questoes.AtualizarQuestao(c.Request.Context(), c.Param("id"), campos); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deletarQuestao(c *gin.Context) {
	if !s.verificarDonoQuestao(c) {
		return
	}
	if err := s.questoes.DeletarQuestao(c.Request.Context(), c.Param("id")); err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// marcarResultado grava o desfecho de quem está autenticado, dono ou
// parceiro; cada um escreve só na sua fatia do mapa de resultados.
func (s *Server) marcarResultado(c *gin.Context) {
	var req marcarResultadoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Acertou == nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "acertou é obrigatório"})
		return
	}

	err := s.questoes.MarcarResultado(c.Request.Context(), c.Param("id"), c.GetString(chaveUserID), *req.Acertou)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) adicionarComentario(c *gin.Context) {
	var req adicionarComentarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "texto é obrigatório"})
		return
	}

	userID := c.GetString(chaveUserID)
	apelido := ""
	if cfg, err := s.usuarios.ObterConfiguracao(c.Request.Context(), userID); err == nil && cfg != nil {
		apelido = cfg.MeuApelido
	}

	err := s.questoes.AdicionarComentario(c.Request.Context(), c.Param("id"), userID, apelido, req.Texto)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) verificarDonoQuestao(c *gin.Context) bool {
	questao, err := s.questoes.BuscarQuestaoPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.responderErro(c, err)
		return false
	}
	if questao.UserID != c.GetString(chaveUserID) {
		c.JSON(http.StatusForbidden, gin.H{"erro": "você não tem permissão para alterar esta questão"})
		return false
	}
	return true
}
