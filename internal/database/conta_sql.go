package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/cadernoestudos/pkg/models"
)

// ContaSQL guarda as credenciais do modo de autenticação local.
type ContaSQL struct {
	db *sqlx.DB
}

func NewContaSQL(db *sqlx.DB) *ContaSQL {
	return &ContaSQL{db: db}
}

func (r *ContaSQL) Criar(ctx context.Context, conta *models.Conta) error {
	conta.CreatedAt = time.Now().UTC()
	query := r.db.Rebind(`
		INSERT INTO contas (user_id, email, senha_hash, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if _, err := r.db.ExecContext(ctx, query, conta.UserID, conta.Email, conta.SenhaHash, conta.CreatedAt); err != nil {
		return fmt.Errorf("failed to create conta: %v", err)
	}
	return nil
}

func (r *ContaSQL) BuscarPorEmail(ctx context.Context, email string) (*models.Conta, error) {
	var conta models.Conta
	query := r.db.Rebind("SELECT user_id, email, senha_hash, created_at FROM contas WHERE email = ?")
	if err := r.db.GetContext(ctx, &conta, query, email); err != nil {
		return nil, traduzErroSQL("get conta", err)
	}
	return &conta, nil
}
