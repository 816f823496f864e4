package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/cadernoestudos/internal/database"
)

func novoProviderLocal(t *testing.T, agora func() time.Time) *Local {
	t.Helper()
	db, err := database.Connect("sqlite", "", t.TempDir())
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewLocal(database.NewContaSQL(db), "segredo-de-teste", agora)
}

func TestCadastroLoginEVerificacao(t *testing.T) {
	provider := novoProviderLocal(t, nil)
	ctx := context.Background()

	sessao, err := provider.Cadastrar(ctx, "ana@example.com", "Estudo#2024ok")
	if err != nil {
		t.Fatalf("Cadastrar: %v", err)
	}
	if sessao.UserID == "" || sessao.Token == "" {
		t.Fatalf("sessão incompleta: %+v", sessao)
	}

	identidade, err := provider.Verificar(ctx, sessao.Token)
	if err != nil {
		t.Fatalf("Verificar: %v", err)
	}
	if identidade.UserID != sessao.UserID || identidade.Email != "ana@example.com" {
		t.Errorf("identidade = %+v", identidade)
	}

	entrada, err := provider.Entrar(ctx, "ana@example.com", "Estudo#2024ok")
	if err != nil {
		t.Fatalf("Entrar: %v", err)
	}
	if entrada.UserID != sessao.UserID {
		t.Errorf("login devolveu outro usuário: %q != %q", entrada.UserID, sessao.UserID)
	}
}

func TestCadastroComEmailRepetido(t *testing.T) {
	provider := novoProviderLocal(t, nil)
	ctx := context.Background()

	if _, err := provider.Cadastrar(ctx, "ana@example.com", "Estudo#2024ok"); err != nil {
		t.Fatalf("Cadastrar: %v", err)
	}
	if _, err := provider.Cadastrar(ctx, "ana@example.com", "Outra#Senha9"); !errors.Is(err, ErrEmailEmUso) {
		t.Errorf("esperava ErrEmailEmUso, veio %v", err)
	}
}

func TestLoginComCredenciaisErradas(t *testing.T) {
	provider := novoProviderLocal(t, nil)
	ctx := context.Background()

	if _, err := provider.Entrar(ctx, "nao-existe@example.com", "qualquer"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Errorf("email desconhecido: esperava ErrCredenciaisInvalidas, veio %v", err)
	}

	if _, err := provider.Cadastrar(ctx, "ana@example.com", "Estudo#2024ok"); err != nil {
		t.Fatalf("Cadastrar: %v", err)
	}
	if _, err := provider.Entrar(ctx, "ana@example.com", "senha-errada"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Errorf("senha errada: esperava ErrCredenciaisInvalidas, veio %v", err)
	}
}

func TestTokenExpirado(t *testing.T) {
	momento := time.Now()
	provider := novoProviderLocal(t, func() time.Time { return momento })
	ctx := context.Background()

	sessao, err := provider.Cadastrar(ctx, "ana@example.com", "Estudo#2024ok")
	if err != nil {
		t.Fatalf("Cadastrar: %v", err)
	}

	// Avança o relógio além da validade da sessão
	momento = momento.Add(25 * time.Hour)
	if _, err := provider.Verificar(ctx, sessao.Token); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("esperava ErrTokenInvalido, veio %v", err)
	}
}

func TestTokenAdulterado(t *testing.T) {
	provider := novoProviderLocal(t, nil)
	ctx := context.Background()

	if _, err := provider.Verificar(ctx, "nao-e-um-jwt"); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("esperava ErrTokenInvalido, veio %v", err)
	}
}
