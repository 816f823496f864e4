package database

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/cadernoestudos/pkg/models"
)

// EstudoFirestore implementa EstudoRepository sobre a coleção "estudos".
type EstudoFirestore struct {
	client *firestore.Client
}

func NewEstudoFirestore(client *firestore.Client) *EstudoFirestore {
	return &EstudoFirestore{client: client}
}

func (r *EstudoFirestore) Criar(ctx context.Context, estudo *models.Estudo) (string, error) {
	ref, _, err := r.client.Collection(ColecaoEstudos).Add(ctx, map[string]interface{}{
		"concurso":  estudo.Concurso,
		"cargo":     estudo.Cargo,
		"materia":   estudo.Materia,
		"assunto":   estudo.Assunto,
		"userId":    estudo.UserID,
		"createdAt": firestore.ServerTimestamp,
		"updatedAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create estudo: %w", traduzErroFirestore(err))
	}
	estudo.ID = ref.ID
	return ref.ID, nil
}

func (r *EstudoFirestore) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(campos)+1)
	for campo, valor := range campos {
		updates = append(updates, firestore.Update{Path: campo, Value: valor})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(ColecaoEstudos).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update estudo: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *EstudoFirestore) Deletar(ctx context.Context, id string) error {
	if _, err := r.client.Collection(ColecaoEstudos).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete estudo: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *EstudoFirestore) BuscarPorID(ctx context.Context, id string) (*models.Estudo, error) {
	doc, err := r.client.Collection(ColecaoEstudos).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get estudo: %w", traduzErroFirestore(err))
	}
	estudo := models.EstudoDeMapa(doc.Ref.ID, doc.Data())
	return &estudo, nil
}

func (r *EstudoFirestore) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Estudo, error) {
	// Sem OrderBy no servidor para não exigir índice composto; a ordenação
	// é feita aqui sobre o timestamp normalizado.
	iter := r.client.Collection(ColecaoEstudos).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var estudos []models.Estudo
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list estudos: %w", traduzErroFirestore(err))
		}
		estudos = append(estudos, models.EstudoDeMapa(doc.Ref.ID, doc.Data()))
	}

	sort.SliceStable(estudos, func(i, j int) bool {
		return estudos[i].CreatedAt.After(estudos[j].CreatedAt)
	})
	return estudos, nil
}
