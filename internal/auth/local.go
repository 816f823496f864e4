package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/pkg/models"
)

// Contas é o armazenamento de credenciais do modo local.
type Contas interface {
	Criar(ctx context.Context, conta *models.Conta) error
	BuscarPorEmail(ctx context.Context, email string) (*models.Conta, error)
}

// Local implementa o provedor de identidade sobre a tabela contas, com hash
// bcrypt e sessões JWT HS256. Usado junto com o driver de armazenamento sql.
type Local struct {
	contas   Contas
	segredo  []byte
	validade time.Duration
	agora    func() time.Time
}

// NewLocal cria o provedor local. agora pode ser nil para usar time.Now.
func NewLocal(contas Contas, segredo string, agora func() time.Time) *Local {
	if agora == nil {
		agora = time.Now
	}
	return &Local{
		contas:   contas,
		segredo:  []byte(segredo),
		validade: 24 * time.Hour,
		agora:    agora,
	}
}

func (l *Local) Cadastrar(ctx context.Context, email, senha string) (*Sessao, error) {
	_, err := l.contas.BuscarPorEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailEmUso
	}
	if !errors.Is(err, database.ErrNaoEncontrado) {
		return nil, fmt.Errorf("failed to check email: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	conta := &models.Conta{
		UserID:    uuid.NewString(),
		Email:     email,
		SenhaHash: string(hash),
	}
	if err := l.contas.Criar(ctx, conta); err != nil {
		return nil, fmt.Errorf("failed to create conta: %v", err)
	}
	return l.emitirSessao(conta)
}

func (l *Local) Entrar(ctx context.Context, email, senha string) (*Sessao, error) {
	conta, err := l.contas.BuscarPorEmail(ctx, email)
	if errors.Is(err, database.ErrNaoEncontrado) {
		return nil, ErrCredenciaisInvalidas
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conta: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(conta.SenhaHash), []byte(senha)) != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return l.emitirSessao(conta)
}

func (l *Local) Verificar(ctx context.Context, token string) (*Identidade, error) {
	claims := jwt.MapClaims{}
	analisado, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return l.segredo, nil
	}, jwt.WithTimeFunc(l.agora))
	if err != nil || !analisado.Valid {
		return nil, ErrTokenInvalido
	}

	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return nil, ErrTokenInvalido
	}
	return &Identidade{UserID: userID, Email: email}, nil
}

func (l *Local) emitirSessao(conta *models.Conta) (*Sessao, error) {
	agora := l.agora()
	claims := jwt.MapClaims{
		"sub":   conta.UserID,
		"email": conta.Email,
		"iat":   agora.Unix(),
		"exp":   agora.Add(l.validade).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(l.segredo)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %v", err)
	}
	return &Sessao{UserID: conta.UserID, Email: conta.Email, Token: token}, nil
}
