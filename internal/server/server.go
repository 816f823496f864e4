package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/example/cadernoestudos/internal/auth"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/internal/service"
	"github.com/example/cadernoestudos/pkg/models"
)

// Server expõe a API do caderno de estudos. Os handlers são traduções finas
// requisição <-> serviço; toda validação de entrada acontece antes de
// qualquer chamada ao backend.
type Server struct {
	engine   *gin.Engine
	provider auth.Provider

	estudos    *service.EstudoService
	questoes   *service.QuestaoService
	revisoes   *service.RevisaoService
	usuarios   *service.UsuarioService
	parcerias  *service.ParceriaService
	desempenho *service.DesempenhoService

	limiterLogin  *security.RateLimiter
	limiterSignup *security.RateLimiter
}

// Deps agrupa tudo que o servidor compõe.
type Deps struct {
	Provider   auth.Provider
	Estudos    *service.EstudoService
	Questoes   *service.QuestaoService
	Revisoes   *service.RevisaoService
	Usuarios   *service.UsuarioService
	Parcerias  *service.ParceriaService
	Desempenho *service.DesempenhoService

	LimiterLogin  *security.RateLimiter
	LimiterSignup *security.RateLimiter
}

func New(deps Deps) *Server {
	s := &Server{
		engine:        gin.New(),
		provider:      deps.Provider,
		estudos:       deps.Estudos,
		questoes:      deps.Questoes,
		revisoes:      deps.Revisoes,
		usuarios:      deps.Usuarios,
		parcerias:     deps.Parcerias,
		desempenho:    deps.Desempenho,
		limiterLogin:  deps.LimiterLogin,
		limiterSignup: deps.LimiterSignup,
	}
	registrarValidacoes()
	s.engine.Use(gin.Recovery(), logMiddleware())
	s.rotas()
	return s
}

// registrarValidacoes acrescenta as regras de binding específicas do domínio.
func registrarValidacoes() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("statusrevisao", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		return status == models.RevisaoPendente || status == models.RevisaoConcluida
	})
}

func (s *Server) rotas() {
	api := s.engine.Group("/api")

	api.POST("/auth/signup", rateLimitMiddleware(s.limiterSignup), s.signup)
	api.POST("/auth/login", rateLimitMiddleware(s.limiterLogin), s.login)

	autenticado := api.Group("", s.authMiddleware())
	{
		autenticado.GET("/estudos", s.listarEstudos)
		autenticado.POST("/estudos", s.criarEstudo)
		autenticado.GET("/estudos/:id", s.buscarEstudo)
		autenticado.PUT("/estudos/:id", s.atualizarEstudo)
		autenticado.DELETE("/estudos/:id", s.deletarEstudo)

		autenticado.GET("/revisoes", s.listarRevisoes)
		autenticado.POST("/revisoes", s.criarRevisao)
		autenticado.PUT("/revisoes/:id", s.atualizarRevisao)
		autenticado.PUT("/revisoes/:id/concluir", s.concluirRevisao)
		autenticado.DELETE("/revisoes/:id", s.deletarRevisao)

		autenticado.GET("/questoes", s.listarQuestoes)
		autenticado.POST("/questoes", s.criarQuestao)
		autenticado.GET("/questoes/:id", s.buscarQuestao)
		autenticado.PUT("/questoes/:id", s.atualizarQuestao)
		autenticado.DELETE("/questoes/:id", s.deletarQuestao)
		autenticado.POST("/questoes/:id/resultado", s.marcarResultado)
		autenticado.POST("/questoes/:id/comentarios", s.adicionarComentario)

		autenticado.GET("/usuario/configuracao", s.obterConfiguracao)
		autenticado.PUT("/usuario/configuracao", s.salvarConfiguracao)
		autenticado.PUT("/usuario/parceiro", s.definirEmailParceiro)
		autenticado.PUT("/usuario/parceiro/apelido", s.definirApelidoParceiro)
		autenticado.DELETE("/usuario/parceiro", s.removerParceiro)
		autenticado.GET("/usuario/por-email", s.buscarUsuarioPorEmail)

		autenticado.POST("/parcerias", s.solicitarParceria)
		autenticado.GET("/parcerias/ativa", s.buscarParceriaAtiva)
		autenticado.GET("/parcerias/pendentes", s.listarSolicitacoesPendentes)
		autenticado.PUT("/parcerias/:id/aceitar", s.aceitarParceria)
		autenticado.PUT("/parcerias/:id/revogar", s.revogarParceria)

		autenticado.GET("/desempenho", s.obterDesempenho)
		autenticado.GET("/desempenho/planilha", s.exportarDesempenho)
	}
}

// Engine expõe o roteador, usado nos testes com httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(porta string) error {
	return s.engine.Run(":" + porta)
}

// usuarioAlvo resolve de quem são os dados pedidos: do próprio usuário ou,
// com ?parceiro=1, do parceiro da parceria ativa. A visibilidade do parceiro
// é sempre uma releitura com o userId dele, nunca mudança de dono.
func (s *Server) usuarioAlvo(c *gin.Context) (string, bool) {
	userID := c.GetString(chaveUserID)
	if c.Query("parceiro") != "1" {
		return userID, true
	}

	parceria, err := s.parcerias.BuscarParceriaAtiva(c.Request.Context(), userID)
	if err != nil {
		s.responderErro(c, err)
		return "", false
	}
	if parceria == nil {
		c.JSON(http.StatusNotFound, gin.H{"erro": "nenhuma parceria ativa"})
		return "", false
	}
	return parceria.OutroLado(userID), true
}

// podeLer autoriza a leitura de um registro de outra pessoa: o dono sempre
// pode; o outro lado da parceria ativa pode, somente leitura.
func (s *Server) podeLer(c *gin.Context, donoID string) bool {
	userID := c.GetString(chaveUserID)
	if donoID == userID {
		return true
	}

	parceria, err := s.parcerias.BuscarParceriaAtiva(c.Request.Context(), userID)
	if err != nil {
		s.responderErro(c, err)
		return false
	}
	if parceria == nil || parceria.OutroLado(userID) != donoID {
		c.JSON(http.StatusForbidden, gin.H{"erro": "você não tem permissão para ver este registro"})
		return false
	}
	return true
}

// responderErro traduz os erros de domínio para o status HTTP da resposta.
func (s *Server) responderErro(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidacao):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNaoEncontrado):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrPermissaoNegada):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNaoAutenticado):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrServicoIndisponivel):
		status = http.StatusServiceUnavailable
	case errors.Is(err, auth.ErrCredenciaisInvalidas), errors.Is(err, auth.ErrTokenInvalido):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailEmUso):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"erro": err.Error()})
}
