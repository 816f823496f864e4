package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/example/cadernoestudos/pkg/models"
)

// QuestaoSQL implementa QuestaoRepository sobre o driver local. Os mapas de
// comentários e resultados ficam serializados como JSON em colunas de texto.
type QuestaoSQL struct {
	db *sqlx.DB
}

func NewQuestaoSQL(db *sqlx.DB) *QuestaoSQL {
	return &QuestaoSQL{db: db}
}

var colunasQuestao = map[string]string{
	"enunciado":  "enunciado",
	"comentario": "comentario",
	"acertou":    "acertou",
}

const colunasSelectQuestao = `
	SELECT id, estudo_id, user_id, enunciado, comentario, acertou, comentarios, resultados, created_at, updated_at
	FROM questoes
`

func (r *QuestaoSQL) Criar(ctx context.Context, questao *models.Questao) (string, error) {
	if questao.ID == "" {
		questao.ID = uuid.NewString()
	}
	agora := time.Now().UTC()
	questao.CreatedAt = agora
	questao.UpdatedAt = agora

	comentariosJSON, err := serializar(questao.Comentarios)
	if err != nil {
		return "", fmt.Errorf("failed to marshal comentarios: %v", err)
	}
	resultadosJSON, err := serializar(questao.Resultados)
	if err != nil {
		return "", fmt.Errorf("failed to marshal resultados: %v", err)
	}

	query := r.db.Rebind(`
		INSERT INTO questoes (id, estudo_id, user_id, enunciado, comentario, acertou, comentarios, resultados, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = r.db.ExecContext(ctx, query,
		questao.ID,
		questao.EstudoID,
		questao.UserID,
		questao.Enunciado,
		questao.Comentario,
		questao.Acertou,
		comentariosJSON,
		resultadosJSON,
		questao.CreatedAt,
		questao.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create questao: %v", err)
	}
	return questao.ID, nil
}

func (r *QuestaoSQL) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	sets, args, err := montarSet(colunasQuestao, campos)
	if err != nil {
		return err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := r.db.Rebind("UPDATE questoes SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update questao: %v", err)
	}
	return verificarLinhas(result)
}

func (r *QuestaoSQL) Deletar(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM questoes WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete questao: %v", err)
	}
	return nil
}

func (r *QuestaoSQL) BuscarPorID(ctx context.Context, id string) (*models.Questao, error) {
	query := r.db.Rebind(colunasSelectQuestao + " WHERE id = ?")
	row := r.db.QueryRowContext(ctx, query, id)
	questao, err := scanQuestao(row)
	if err != nil {
		return nil, traduzErroSQL("get questao", err)
	}
	return questao, nil
}

func (r *QuestaoSQL) BuscarPorEstudo(ctx context.Context, estudoID string) ([]models.Questao, error) {
	query := r.db.Rebind(colunasSelectQuestao + " WHERE estudo_id = ? ORDER BY created_at DESC")
	return r.listar(ctx, query, estudoID)
}

func (r *QuestaoSQL) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Questao, error) {
	query := r.db.Rebind(colunasSelectQuestao + " WHERE user_id = ? ORDER BY created_at DESC")
	return r.listar(ctx, query, userID)
}

func (r *QuestaoSQL) RegistrarResultado(ctx context.Context, questaoID, userID string, resultado models.Resultado, espelharLegado bool) error {
	questao, err := r.BuscarPorID(ctx, questaoID)
	if err != nil {
		return err
	}

	if questao.Resultados == nil {
		questao.Resultados = make(map[string]models.Resultado)
	}
	questao.Resultados[userID] = resultado

	resultadosJSON, err := serializar(questao.Resultados)
	if err != nil {
		return fmt.Errorf("failed to marshal resultados: %v", err)
	}

	agora := time.Now().UTC()
	if espelharLegado {
		query := r.db.Rebind("UPDATE questoes SET resultados = ?, acertou = ?, updated_at = ? WHERE id = ?")
		_, err = r.db.ExecContext(ctx, query, resultadosJSON, resultado.Acertou, agora, questaoID)
	} else {
		query := r.db.Rebind("UPDATE questoes SET resultados = ?, updated_at = ? WHERE id = ?")
		_, err = r.db.ExecContext(ctx, query, resultadosJSON, agora, questaoID)
	}
	if err != nil {
		return fmt.Errorf("failed to record resultado: %v", err)
	}
	return nil
}

func (r *QuestaoSQL) AdicionarComentario(ctx context.Context, questaoID string, comentario models.Comentario) error {
	questao, err := r.BuscarPorID(ctx, questaoID)
	if err != nil {
		return err
	}

	comentarios := append(questao.Comentarios, comentario)
	comentariosJSON, err := serializar(comentarios)
	if err != nil {
		return fmt.Errorf("failed to marshal comentarios: %v", err)
	}

	query := r.db.Rebind("UPDATE questoes SET comentarios = ?, updated_at = ? WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, comentariosJSON, time.Now().UTC(), questaoID); err != nil {
		return fmt.Errorf("failed to add comentario: %v", err)
	}
	return nil
}

func (r *QuestaoSQL) listar(ctx context.Context, query string, arg interface{}) ([]models.Questao, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list questoes: %v", err)
	}
	defer rows.Close()

	var questoes []models.Questao
	for rows.Next() {
		questao, err := scanQuestao(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan questao: %v", err)
		}
		questoes = append(questoes, *questao)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questoes: %v", err)
	}
	return questoes, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestao(row scanner) (*models.Questao, error) {
	var questao models.Questao
	var acertou sql.NullBool
	var comentariosJSON, resultadosJSON string

	err := row.Scan(
		&questao.ID,
		&questao.EstudoID,
		&questao.UserID,
		&questao.Enunciado,
		&questao.Comentario,
		&acertou,
		&comentariosJSON,
		&resultadosJSON,
		&questao.CreatedAt,
		&questao.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if acertou.Valid {
		valor := acertou.Bool
		questao.Acertou = &valor
	}

	// Os dois formatos históricos de comentários passam pelo mesmo
	// caminho de normalização usado no driver Firestore.
	if comentariosJSON != "" {
		var cru interface{}
		if err := json.Unmarshal([]byte(comentariosJSON), &cru); err != nil {
			return nil, fmt.Errorf("failed to parse comentarios: %v", err)
		}
		questao.Comentarios = models.NormalizarComentarios(cru)
	}
	if resultadosJSON != "" {
		var cru interface{}
		if err := json.Unmarshal([]byte(resultadosJSON), &cru); err != nil {
			return nil, fmt.Errorf("failed to parse resultados: %v", err)
		}
		questao.Resultados = models.NormalizarResultados(cru)
	}

	return &questao, nil
}

// serializar devolve string vazia para valores nulos/vazios, evitando JSON
// "null" nas colunas.
func serializar(v interface{}) (string, error) {
	switch valor := v.(type) {
	case []models.Comentario:
		if len(valor) == 0 {
			return "", nil
		}
	case map[string]models.Resultado:
		if len(valor) == 0 {
			return "", nil
		}
	}
	dados, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(dados), nil
}
