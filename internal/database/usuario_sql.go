package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/cadernoestudos/pkg/models"
)

// UsuarioSQL implementa UsuarioRepository sobre o driver local. A tabela é
// chaveada pelo id do usuário no provedor de autenticação.
type UsuarioSQL struct {
	db *sqlx.DB
}

func NewUsuarioSQL(db *sqlx.DB) *UsuarioSQL {
	return &UsuarioSQL{db: db}
}

var colunasUsuario = map[string]string{
	"concurso":        "concurso",
	"cargo":           "cargo",
	"email":           "email",
	"meuApelido":      "meu_apelido",
	"parceiroEmail":   "parceiro_email",
	"apelidoParceiro": "apelido_parceiro",
}

const colunasSelectUsuario = `
	SELECT user_id, concurso, cargo, email, meu_apelido, parceiro_email, apelido_parceiro, artificial, updated_at
	FROM usuarios
`

func (r *UsuarioSQL) Obter(ctx context.Context, userID string) (*models.ConfiguracaoUsuario, error) {
	var cfg models.ConfiguracaoUsuario
	query := r.db.Rebind(colunasSelectUsuario + " WHERE user_id = ?")
	if err := r.db.GetContext(ctx, &cfg, query, userID); err != nil {
		return nil, traduzErroSQL("get configuracao", err)
	}
	return &cfg, nil
}

// Salvar faz upsert da configuração (update e, se nada foi atingido, insert).
func (r *UsuarioSQL) Salvar(ctx context.Context, cfg *models.ConfiguracaoUsuario) error {
	cfg.UpdatedAt = time.Now().UTC()

	update := r.db.Rebind(`
		UPDATE usuarios SET
			concurso = ?, cargo = ?, email = ?, meu_apelido = ?,
			parceiro_email = ?, apelido_parceiro = ?, artificial = ?, updated_at = ?
		WHERE user_id = ?
	`)
	result, err := r.db.ExecContext(ctx, update,
		cfg.Concurso, cfg.Cargo, cfg.Email, cfg.MeuApelido,
		cfg.ParceiroEmail, cfg.ApelidoParceiro, cfg.Artificial, cfg.UpdatedAt,
		cfg.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to save configuracao: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows > 0 {
		return nil
	}

	insert := r.db.Rebind(`
		INSERT INTO usuarios (user_id, concurso, cargo, email, meu_apelido, parceiro_email, apelido_parceiro, artificial, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = r.db.ExecContext(ctx, insert,
		cfg.UserID, cfg.Concurso, cfg.Cargo, cfg.Email, cfg.MeuApelido,
		cfg.ParceiroEmail, cfg.ApelidoParceiro, cfg.Artificial, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save configuracao: %v", err)
	}
	return nil
}

func (r *UsuarioSQL) AtualizarCampos(ctx context.Context, userID string, campos map[string]interface{}) error {
	sets, args, err := montarSet(colunasUsuario, campos)
	if err != nil {
		return err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), userID)

	query := r.db.Rebind("UPDATE usuarios SET " + strings.Join(sets, ", ") + " WHERE user_id = ?")
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update configuracao: %v", err)
	}
	return verificarLinhas(result)
}

func (r *UsuarioSQL) BuscarPorEmail(ctx context.Context, email string) (*models.ConfiguracaoUsuario, error) {
	var cfg models.ConfiguracaoUsuario
	query := r.db.Rebind(colunasSelectUsuario + " WHERE email = ? LIMIT 1")
	if err := r.db.GetContext(ctx, &cfg, query, email); err != nil {
		return nil, traduzErroSQL("find usuario by email", err)
	}
	return &cfg, nil
}

// ListarTodos devolve todas as configurações salvas; usado pela varredura de
// lembretes. Linhas artificiais ficam de fora.
func (r *UsuarioSQL) ListarTodos(ctx context.Context) ([]models.ConfiguracaoUsuario, error) {
	var usuarios []models.ConfiguracaoUsuario
	query := colunasSelectUsuario + " WHERE artificial = 0"
	if err := r.db.SelectContext(ctx, &usuarios, query); err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %v", err)
	}
	return usuarios, nil
}

func (r *UsuarioSQL) Deletar(ctx context.Context, userID string) error {
	query := r.db.Rebind("DELETE FROM usuarios WHERE user_id = ?")
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete usuario: %v", err)
	}
	return nil
}
