package auth

import (
	"context"
	"errors"
)

// Sessao é o resultado de um cadastro ou login: a identidade opaca que o
// núcleo da aplicação conhece mais o token que a representa nas próximas
// requisições.
type Sessao struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// Identidade é o que um token válido carrega. O núcleo nunca vê senha nem
// qualquer outro dado do provedor.
type Identidade struct {
	UserID string
	Email  string
}

// Provider abstrai o provedor de identidade. A implementação firebase delega
// tudo ao serviço gerenciado; a local guarda credenciais na tabela contas.
type Provider interface {
	Cadastrar(ctx context.Context, email, senha string) (*Sessao, error)
	Entrar(ctx context.Context, email, senha string) (*Sessao, error)
	Verificar(ctx context.Context, token string) (*Identidade, error)
}

var (
	ErrCredenciaisInvalidas = errors.New("email ou senha incorretos")
	ErrEmailEmUso           = errors.New("este email já está cadastrado")
	ErrTokenInvalido        = errors.New("token inválido ou expirado")
)
