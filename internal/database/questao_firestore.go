package database

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/cadernoestudos/pkg/models"
)

// QuestaoFirestore implementa QuestaoRepository sobre a coleção "questoes".
type QuestaoFirestore struct {
	client *firestore.Client
}

func NewQuestaoFirestore(client *firestore.Client) *QuestaoFirestore {
	return &QuestaoFirestore{client: client}
}

func (r *QuestaoFirestore) Criar(ctx context.Context, questao *models.Questao) (string, error) {
	doc := map[string]interface{}{
		"estudoId":   questao.EstudoID,
		"userId":     questao.UserID,
		"enunciado":  questao.Enunciado,
		"comentario": questao.Comentario,
		"createdAt":  firestore.ServerTimestamp,
		"updatedAt":  firestore.ServerTimestamp,
	}
	if questao.Acertou != nil {
		doc["acertou"] = *questao.Acertou
	}
	if len(questao.Comentarios) > 0 {
		doc["comentarios"] = questao.Comentarios
	}
	if len(questao.Resultados) > 0 {
		doc["resultados"] = questao.Resultados
	}

	ref, _, err := r.client.Collection(ColecaoQuestoes).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create questao: %w", traduzErroFirestore(err))
	}
	questao.ID = ref.ID
	return ref.ID, nil
}

func (r *QuestaoFirestore) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(campos)+1)
	for campo, valor := range campos {
		updates = append(updates, firestore.Update{Path: campo, Value: valor})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(ColecaoQuestoes).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update questao: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *QuestaoFirestore) Deletar(ctx context.Context, id string) error {
	if _, err := r.client.Collection(ColecaoQuestoes).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete questao: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *QuestaoFirestore) BuscarPorID(ctx context.Context, id string) (*models.Questao, error) {
	doc, err := r.client.Collection(ColecaoQuestoes).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get questao: %w", traduzErroFirestore(err))
	}
	questao := models.QuestaoDeMapa(doc.Ref.ID, doc.Data())
	return &questao, nil
}

func (r *QuestaoFirestore) BuscarPorEstudo(ctx context.Context, estudoID string) ([]models.Questao, error) {
	return r.listar(ctx, r.client.Collection(ColecaoQuestoes).Where("estudoId", "==", estudoID))
}

func (r *QuestaoFirestore) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Questao, error) {
	return r.listar(ctx, r.client.Collection(ColecaoQuestoes).Where("userId", "==", userID))
}

// RegistrarResultado escreve na granularidade do campo resultados.<userId>;
// escritas concorrentes de dono e parceiro não se sobrescrevem.
func (r *QuestaoFirestore) RegistrarResultado(ctx context.Context, questaoID, userID string, resultado models.Resultado, espelharLegado bool) error {
	updates := []firestore.Update{
		{
			FieldPath: firestore.FieldPath{"resultados", userID},
			Value: map[string]interface{}{
				"acertou": resultado.Acertou,
				"data":    resultado.Data,
			},
		},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if espelharLegado {
		updates = append(updates, firestore.Update{Path: "acertou", Value: resultado.Acertou})
	}

	if _, err := r.client.Collection(ColecaoQuestoes).Doc(questaoID).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to record resultado: %w", traduzErroFirestore(err))
	}
	return nil
}

// AdicionarComentario lê o documento, normaliza os dois formatos históricos
// e grava de volta a sequência canônica com o novo comentário. A gravação é
// último-escritor-vence, na granularidade do campo.
func (r *QuestaoFirestore) AdicionarComentario(ctx context.Context, questaoID string, comentario models.Comentario) error {
	doc, err := r.client.Collection(ColecaoQuestoes).Doc(questaoID).Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get questao: %w", traduzErroFirestore(err))
	}

	comentarios := models.NormalizarComentarios(doc.Data()["comentarios"])
	comentarios = append(comentarios, comentario)

	updates := []firestore.Update{
		{Path: "comentarios", Value: comentarios},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if _, err := r.client.Collection(ColecaoQuestoes).Doc(questaoID).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to add comentario: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *QuestaoFirestore) listar(ctx context.Context, query firestore.Query) ([]models.Questao, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var questoes []models.Questao
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list questoes: %w", traduzErroFirestore(err))
		}
		questoes = append(questoes, models.QuestaoDeMapa(doc.Ref.ID, doc.Data()))
	}

	sort.SliceStable(questoes, func(i, j int) bool {
		return questoes[i].CreatedAt.After(questoes[j].CreatedAt)
	})
	return questoes, nil
}
