package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/excel"
	"github.com/example/cadernoestudos/internal/logger"
)

func (s *Server) obterDesempenho(c *gin.Context) {
	alvo, ok := s.usuarioAlvo(c)
	if !ok {
		return
	}
	desempenho, err := s.desempenho.Calcular(c.Request.Context(), alvo)
	if err != nil {
		s.responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, desempenho)
}

func (s *Server) exportarDesempenho(c *gin.Context) {
	alvo, ok := s.usuarioAlvo(c)
	if !ok {
		return
	}
	desempenho, err := s.desempenho.Calcular(c.Request.Context(), alvo)
	if err != nil {
		s.responderErro(c, err)
		return
	}

	planilha, err := excel.RelatorioDesempenho(desempenho)
	if err != nil {
		s.responderErro(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="desempenho.xlsx"`)
	if _, err := planilha.WriteTo(c.Writer); err != nil {
		logger.Error("falha ao enviar planilha: %v", err)
	}
}
