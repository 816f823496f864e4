package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/example/cadernoestudos/pkg/models"
)

// EstudoSQL implementa EstudoRepository sobre o driver local.
type EstudoSQL struct {
	db *sqlx.DB
}

func NewEstudoSQL(db *sqlx.DB) *EstudoSQL {
	return &EstudoSQL{db: db}
}

// colunas atualizáveis, chaveadas pelo nome do campo no documento
var colunasEstudo = map[string]string{
	"concurso": "concurso",
	"cargo":    "cargo",
	"materia":  "materia",
	"assunto":  "assunto",
}

func (r *EstudoSQL) Criar(ctx context.Context, estudo *models.Estudo) (string, error) {
	if estudo.ID == "" {
		estudo.ID = uuid.NewString()
	}
	agora := time.Now().UTC()
	estudo.CreatedAt = agora
	estudo.UpdatedAt = agora

	query := r.db.Rebind(`
		INSERT INTO estudos (id, concurso, cargo, materia, assunto, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query,
		estudo.ID,
		estudo.Concurso,
		estudo.Cargo,
		estudo.Materia,
		estudo.Assunto,
		estudo.UserID,
		estudo.CreatedAt,
		estudo.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create estudo: %v", err)
	}
	return estudo.ID, nil
}

func (r *EstudoSQL) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	sets, args, err := montarSet(colunasEstudo, campos)
	if err != nil {
		return err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := r.db.Rebind("UPDATE estudos SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update estudo: %v", err)
	}
	return verificarLinhas(result)
}

func (r *EstudoSQL) Deletar(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM estudos WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete estudo: %v", err)
	}
	return nil
}

func (r *EstudoSQL) BuscarPorID(ctx context.Context, id string) (*models.Estudo, error) {
	var estudo models.Estudo
	query := r.db.Rebind(`
		SELECT id, concurso, cargo, materia, assunto, user_id, created_at, updated_at
		FROM estudos WHERE id = ?
	`)
	if err := r.db.GetContext(ctx, &estudo, query, id); err != nil {
		return nil, traduzErroSQL("get estudo", err)
	}
	return &estudo, nil
}

func (r *EstudoSQL) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Estudo, error) {
	var estudos []models.Estudo
	query := r.db.Rebind(`
		SELECT id, concurso, cargo, materia, assunto, user_id, created_at, updated_at
		FROM estudos WHERE user_id = ?
		ORDER BY created_at DESC
	`)
	if err := r.db.SelectContext(ctx, &estudos, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list estudos: %v", err)
	}
	return estudos, nil
}

// montarSet traduz campos do documento para a cláusula SET, rejeitando
// campos desconhecidos.
func montarSet(colunas map[string]string, campos map[string]interface{}) ([]string, []interface{}, error) {
	var sets []string
	var args []interface{}
	for campo, valor := range campos {
		coluna, ok := colunas[campo]
		if !ok {
			return nil, nil, fmt.Errorf("unknown field %q", campo)
		}
		sets = append(sets, coluna+" = ?")
		args = append(args, valor)
	}
	if len(sets) == 0 {
		return nil, nil, errors.New("no fields to update")
	}
	return sets, args, nil
}

func verificarLinhas(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return ErrNaoEncontrado
	}
	return nil
}
