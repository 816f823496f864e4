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

// ParceriaSQL implementa ParceriaRepository sobre o driver local.
type ParceriaSQL struct {
	db *sqlx.DB
}

func NewParceriaSQL(db *sqlx.DB) *ParceriaSQL {
	return &ParceriaSQL{db: db}
}

var colunasParceria = map[string]string{
	"status":        "status",
	"parceiroId":    "parceiro_id",
	"parceiroEmail": "parceiro_email",
}

const colunasSelectParceria = `
	SELECT id, solicitante_id, solicitante_email, parceiro_id, parceiro_email, status, created_at, updated_at
	FROM parcerias
`

func (r *ParceriaSQL) Criar(ctx context.Context, parceria *models.Parceria) (string, error) {
	if parceria.ID == "" {
		parceria.ID = uuid.NewString()
	}
	if parceria.Status == "" {
		parceria.Status = models.ParceriaPendente
	}
	agora := time.Now().UTC()
	parceria.CreatedAt = agora
	parceria.UpdatedAt = agora

	query := r.db.Rebind(`
		INSERT INTO parcerias (id, solicitante_id, solicitante_email, parceiro_id, parceiro_email, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query,
		parceria.ID,
		parceria.SolicitanteID,
		parceria.SolicitanteEmail,
		parceria.ParceiroID,
		parceria.ParceiroEmail,
		parceria.Status,
		parceria.CreatedAt,
		parceria.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create parceria: %v", err)
	}
	return parceria.ID, nil
}

func (r *ParceriaSQL) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	sets, args, err := montarSet(colunasParceria, campos)
	if err != nil {
		return err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := r.db.Rebind("UPDATE parcerias SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update parceria: %v", err)
	}
	return verificarLinhas(result)
}

func (r *ParceriaSQL) BuscarPorID(ctx context.Context, id string) (*models.Parceria, error) {
	var parceria models.Parceria
	query := r.db.Rebind(colunasSelectParceria + " WHERE id = ?")
	if err := r.db.GetContext(ctx, &parceria, query, id); err != nil {
		return nil, traduzErroSQL("get parceria", err)
	}
	return &parceria, nil
}

func (r *ParceriaSQL) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Parceria, error) {
	query := r.db.Rebind(colunasSelectParceria + " WHERE solicitante_id = ? OR parceiro_id = ? ORDER BY created_at DESC")
	var parcerias []models.Parceria
	if err := r.db.SelectContext(ctx, &parcerias, query, userID, userID); err != nil {
		return nil, fmt.Errorf("failed to list parcerias: %v", err)
	}
	return parcerias, nil
}
