package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/auth"
	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/internal/service"
)

func novoServidorDeTeste(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect("sqlite", "", t.TempDir())
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repos := database.NewSQLRepositorios(db)
	usuarios := service.NewUsuarioService(repos)
	return New(Deps{
		Provider:      auth.NewLocal(database.NewContaSQL(db), "segredo-de-teste", nil),
		Estudos:       service.NewEstudoService(repos),
		Questoes:      service.NewQuestaoService(repos, nil),
		Revisoes:      service.NewRevisaoService(repos, nil),
		Usuarios:      usuarios,
		Parcerias:     service.NewParceriaService(repos, usuarios),
		Desempenho:    service.NewDesempenhoService(repos),
		LimiterLogin:  security.NewRateLimiter(security.LoginTentativasMax, security.JanelaTentativas, nil),
		LimiterSignup: security.NewRateLimiter(security.SignupTentativasMax, security.JanelaTentativas, nil),
	})
}

func requisitar(t *testing.T, srv *Server, metodo, caminho, token string, corpo interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var leitor *bytes.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			t.Fatalf("falha ao montar corpo: %v", err)
		}
		leitor = bytes.NewReader(dados)
	} else {
		leitor = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(metodo, caminho, leitor)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func cadastrar(t *testing.T, srv *Server, email string) string {
	t.Helper()
	w := requisitar(t, srv, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": email,
		"senha": "Estudo#2024ok",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup devolveu %d: %s", w.Code, w.Body.String())
	}
	var sessao auth.Sessao
	if err := json.Unmarshal(w.Body.Bytes(), &sessao); err != nil {
		t.Fatalf("falha ao decodificar sessão: %v", err)
	}
	return sessao.Token
}

func TestFluxoCompletoDaAPI(t *testing.T) {
	srv := novoServidorDeTeste(t)
	token := cadastrar(t, srv, "ana@example.com")

	// Cria um estudo
	w := requisitar(t, srv, http.MethodPost, "/api/estudos", token, gin.H{
		"materia": "Matéria A",
		"assunto": "Assunto B com tamanho válido",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar estudo devolveu %d: %s", w.Code, w.Body.String())
	}
	var criado struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &criado); err != nil {
		t.Fatalf("falha ao decodificar resposta: %v", err)
	}

	// Agenda revisão para daqui a 7 dias
	w = requisitar(t, srv, http.MethodPost, "/api/revisoes", token, gin.H{
		"estudoId":    criado.ID,
		"dataRevisao": time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar revisão devolveu %d: %s", w.Code, w.Body.String())
	}
	var revisao struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &revisao); err != nil {
		t.Fatalf("falha ao decodificar resposta: %v", err)
	}

	// Conclui e confere as listagens
	w = requisitar(t, srv, http.MethodPut, "/api/revisoes/"+revisao.ID+"/concluir", token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("concluir revisão devolveu %d: %s", w.Code, w.Body.String())
	}

	w = requisitar(t, srv, http.MethodGet, "/api/revisoes?pendentes=1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listar pendentes devolveu %d", w.Code)
	}
	var pendentes []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &pendentes); err != nil {
		t.Fatalf("falha ao decodificar pendentes: %v", err)
	}
	if len(pendentes) != 0 {
		t.Errorf("revisão concluída continua entre as pendentes: %v", pendentes)
	}

	w = requisitar(t, srv, http.MethodGet, "/api/revisoes", token, nil)
	var todas []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &todas); err != nil {
		t.Fatalf("falha ao decodificar listagem: %v", err)
	}
	if len(todas) != 1 {
		t.Errorf("esperava 1 revisão na listagem completa, veio %d", len(todas))
	}
}

func TestRequisicaoSemToken(t *testing.T) {
	srv := novoServidorDeTeste(t)

	w := requisitar(t, srv, http.MethodGet, "/api/estudos", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("sem token: esperava 401, veio %d", w.Code)
	}

	w = requisitar(t, srv, http.MethodGet, "/api/estudos", "token-invalido", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("token inválido: esperava 401, veio %d", w.Code)
	}
}

func TestSignupRejeitaSenhaFraca(t *testing.T) {
	srv := novoServidorDeTeste(t)

	w := requisitar(t, srv, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "ana@example.com",
		"senha": "fraca",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("esperava 400, veio %d: %s", w.Code, w.Body.String())
	}
}

func TestLimiteDeTentativasDeLogin(t *testing.T) {
	srv := novoServidorDeTeste(t)

	corpo := gin.H{"email": "ana@example.com", "senha": "senha-errada"}
	for i := 1; i <= security.LoginTentativasMax; i++ {
		w := requisitar(t, srv, http.MethodPost, "/api/auth/login", "", corpo)
		if w.Code == http.StatusTooManyRequests {
			t.Fatalf("tentativa %d barrada antes do limite", i)
		}
	}

	w := requisitar(t, srv, http.MethodPost, "/api/auth/login", "", corpo)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("tentativa %d: esperava 429, veio %d", security.LoginTentativasMax+1, w.Code)
	}
}

func TestLeituraDeDadosDeOutroUsuario(t *testing.T) {
	srv := novoServidorDeTeste(t)
	tokenAna := cadastrar(t, srv, "ana@example.com")
	tokenBeto := cadastrar(t, srv, "beto@example.com")

	w := requisitar(t, srv, http.MethodPost, "/api/estudos", tokenAna, gin.H{
		"materia": "Direito",
		"assunto": "Princípios da administração pública",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar estudo devolveu %d", w.Code)
	}
	var estudo struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &estudo); err != nil {
		t.Fatalf("falha ao decodificar resposta: %v", err)
	}

	w = requisitar(t, srv, http.MethodPost, "/api/questoes", tokenAna, gin.H{
		"estudoId":  estudo.ID,
		"enunciado": "Enunciado com tamanho suficiente para ser válido",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar questão devolveu %d: %s", w.Code, w.Body.String())
	}
	var questao struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &questao); err != nil {
		t.Fatalf("falha ao decodificar resposta: %v", err)
	}

	// A dona continua lendo os próprios registros
	if w = requisitar(t, srv, http.MethodGet, "/api/estudos/"+estudo.ID, tokenAna, nil); w.Code != http.StatusOK {
		t.Errorf("leitura pela dona: esperava 200, veio %d", w.Code)
	}

	// Sem parceria ativa, os registros de Ana são invisíveis para Beto
	casos := []string{
		"/api/estudos/" + estudo.ID,
		"/api/questoes/" + questao.ID,
		"/api/questoes?estudoId=" + estudo.ID,
	}
	for _, caminho := range casos {
		if w = requisitar(t, srv, http.MethodGet, caminho, tokenBeto, nil); w.Code != http.StatusForbidden {
			t.Errorf("GET %s por outro usuário: esperava 403, veio %d (%s)", caminho, w.Code, w.Body.String())
		}
	}
}

func TestMutacaoDeEstudoDeOutroUsuario(t *testing.T) {
	srv := novoServidorDeTeste(t)
	tokenAna := cadastrar(t, srv, "ana@example.com")
	tokenBeto := cadastrar(t, srv, "beto@example.com")

	w := requisitar(t, srv, http.MethodPost, "/api/estudos", tokenAna, gin.H{
		"materia": "História",
		"assunto": "Período colonial brasileiro",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar estudo devolveu %d", w.Code)
	}
	var criado struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &criado); err != nil {
		t.Fatalf("falha ao decodificar resposta: %v", err)
	}

	w = requisitar(t, srv, http.MethodDelete, fmt.Sprintf("/api/estudos/%s", criado.ID), tokenBeto, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("exclusão por outro usuário: esperava 403, veio %d", w.Code)
	}
}
