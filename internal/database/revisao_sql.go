package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/example/cadernoestudos/pkg/models"
)

// RevisaoSQL implementa RevisaoRepository sobre o driver local.
type RevisaoSQL struct {
	db *sqlx.DB
}

func NewRevisaoSQL(db *sqlx.DB) *RevisaoSQL {
	return &RevisaoSQL{db: db}
}

var colunasRevisao = map[string]string{
	"status":           "status",
	"dataRevisao":      "data_revisao",
	"dataUltimoEstudo": "data_ultimo_estudo",
}

func (r *RevisaoSQL) Criar(ctx context.Context, revisao *models.Revisao) (string, error) {
	if revisao.ID == "" {
		revisao.ID = uuid.NewString()
	}
	if revisao.Status == "" {
		revisao.Status = models.RevisaoPendente
	}
	revisao.CreatedAt = time.Now().UTC()

	query := r.db.Rebind(`
		INSERT INTO revisoes (id, estudo_id, user_id, data_ultimo_estudo, data_revisao, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query,
		revisao.ID,
		revisao.EstudoID,
		revisao.UserID,
		revisao.DataUltimoEstudo,
		revisao.DataRevisao,
		revisao.Status,
		revisao.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create revisao: %v", err)
	}
	return revisao.ID, nil
}

func (r *RevisaoSQL) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	sets, args, err := montarSet(colunasRevisao, campos)
	if err != nil {
		return err
	}
	args = append(args, id)

	query := r.db.Rebind("UPDATE revisoes SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update revisao: %v", err)
	}
	return verificarLinhas(result)
}

func (r *RevisaoSQL) Deletar(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM revisoes WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete revisao: %v", err)
	}
	return nil
}

func (r *RevisaoSQL) BuscarPorID(ctx context.Context, id string) (*models.Revisao, error) {
	var revisao models.Revisao
	query := r.db.Rebind(`
		SELECT id, estudo_id, user_id, data_ultimo_estudo, data_revisao, status, created_at
		FROM revisoes WHERE id = ?
	`)
	if err := r.db.GetContext(ctx, &revisao, query, id); err != nil {
		return nil, traduzErroSQL("get revisao", err)
	}
	return &revisao, nil
}

func (r *RevisaoSQL) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Revisao, error) {
	query := r.db.Rebind(`
		SELECT id, estudo_id, user_id, data_ultimo_estudo, data_revisao, status, created_at
		FROM revisoes WHERE user_id = ?
		ORDER BY data_revisao ASC
	`)
	var revisoes []models.Revisao
	if err := r.db.SelectContext(ctx, &revisoes, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list revisoes: %v", err)
	}
	return revisoes, nil
}

func (r *RevisaoSQL) BuscarPendentes(ctx context.Context, userID string) ([]models.Revisao, error) {
	query := r.db.Rebind(`
		SELECT id, estudo_id, user_id, data_ultimo_estudo, data_revisao, status, created_at
		FROM revisoes WHERE user_id = ? AND status = ?
		ORDER BY data_revisao ASC
	`)
	var revisoes []models.Revisao
	if err := r.db.SelectContext(ctx, &revisoes, query, userID, models.RevisaoPendente); err != nil {
		return nil, fmt.Errorf("failed to list revisoes pendentes: %v", err)
	}
	return revisoes, nil
}
