package database

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/cadernoestudos/pkg/models"
)

// RevisaoFirestore implementa RevisaoRepository sobre a coleção "revisoes".
type RevisaoFirestore struct {
	client *firestore.Client
}

func NewRevisaoFirestore(client *firestore.Client) *RevisaoFirestore {
	return &RevisaoFirestore{client: client}
}

func (r *RevisaoFirestore) Criar(ctx context.Context, revisao *models.Revisao) (string, error) {
	if revisao.Status == "" {
		revisao.Status = models.RevisaoPendente
	}
	ref, _, err := r.client.Collection(ColecaoRevisoes).Add(ctx, map[string]interface{}{
		"estudoId":         revisao.EstudoID,
		"userId":           revisao.UserID,
		"dataUltimoEstudo": revisao.DataUltimoEstudo,
		"dataRevisao":      revisao.DataRevisao,
		"status":           revisao.Status,
		"createdAt":        firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create revisao: %w", traduzErroFirestore(err))
	}
	revisao.ID = ref.ID
	return ref.ID, nil
}

func (r *RevisaoFirestore) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(campos))
	for campo, valor := range campos {
		updates = append(updates, firestore.Update{Path: campo, Value: valor})
	}

	if _, err := r.client.Collection(ColecaoRevisoes).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update revisao: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *RevisaoFirestore) Deletar(ctx context.Context, id string) error {
	if _, err := r.client.Collection(ColecaoRevisoes).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete revisao: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *RevisaoFirestore) BuscarPorID(ctx context.Context, id string) (*models.Revisao, error) {
	doc, err := r.client.Collection(ColecaoRevisoes).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get revisao: %w", traduzErroFirestore(err))
	}
	revisao := models.RevisaoDeMapa(doc.Ref.ID, doc.Data())
	return &revisao, nil
}

func (r *RevisaoFirestore) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Revisao, error) {
	query := r.client.Collection(ColecaoRevisoes).Where("userId", "==", userID)
	return r.listarOrdenado(ctx, query)
}

func (r *RevisaoFirestore) BuscarPendentes(ctx context.Context, userID string) ([]models.Revisao, error) {
	query := r.client.Collection(ColecaoRevisoes).
		Where("userId", "==", userID).
		Where("status", "==", models.RevisaoPendente)
	return r.listarOrdenado(ctx, query)
}

func (r *RevisaoFirestore) listarOrdenado(ctx context.Context, query firestore.Query) ([]models.Revisao, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var revisoes []models.Revisao
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list revisoes: %w", traduzErroFirestore(err))
		}
		revisoes = append(revisoes, models.RevisaoDeMapa(doc.Ref.ID, doc.Data()))
	}

	// Mais próxima primeiro
	sort.SliceStable(revisoes, func(i, j int) bool {
		return revisoes[i].DataRevisao.Before(revisoes[j].DataRevisao)
	})
	return revisoes, nil
}
