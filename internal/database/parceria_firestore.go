package database

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/cadernoestudos/pkg/models"
)

// ParceriaFirestore implementa ParceriaRepository sobre a coleção "parcerias".
type ParceriaFirestore struct {
	client *firestore.Client
}

func NewParceriaFirestore(client *firestore.Client) *ParceriaFirestore {
	return &ParceriaFirestore{client: client}
}

func (r *ParceriaFirestore) Criar(ctx context.Context, parceria *models.Parceria) (string, error) {
	if parceria.Status == "" {
		parceria.Status = models.ParceriaPendente
	}
	ref, _, err := r.client.Collection(ColecaoParcerias).Add(ctx, map[string]interface{}{
		"solicitanteId":    parceria.SolicitanteID,
		"solicitanteEmail": parceria.SolicitanteEmail,
		"parceiroId":       parceria.ParceiroID,
		"parceiroEmail":    parceria.ParceiroEmail,
		"status":           parceria.Status,
		"createdAt":        firestore.ServerTimestamp,
		"updatedAt":        firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create parceria: %w", traduzErroFirestore(err))
	}
	parceria.ID = ref.ID
	return ref.ID, nil
}

func (r *ParceriaFirestore) Atualizar(ctx context.Context, id string, campos map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(campos)+1)
	for campo, valor := range campos {
		updates = append(updates, firestore.Update{Path: campo, Value: valor})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(ColecaoParcerias).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update parceria: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *ParceriaFirestore) BuscarPorID(ctx context.Context, id string) (*models.Parceria, error) {
	doc, err := r.client.Collection(ColecaoParcerias).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get parceria: %w", traduzErroFirestore(err))
	}
	parceria := models.ParceriaDeMapa(doc.Ref.ID, doc.Data())
	return &parceria, nil
}

// BuscarPorUsuario junta os dois lados da relação (duas consultas de
// igualdade; o backend não tem OR nativo nesta versão da API).
func (r *ParceriaFirestore) BuscarPorUsuario(ctx context.Context, userID string) ([]models.Parceria, error) {
	var parcerias []models.Parceria
	vistos := make(map[string]bool)

	for _, campo := range []string{"solicitanteId", "parceiroId"} {
		iter := r.client.Collection(ColecaoParcerias).Where(campo, "==", userID).Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return nil, fmt.Errorf("failed to list parcerias: %w", traduzErroFirestore(err))
			}
			if vistos[doc.Ref.ID] {
				continue
			}
			vistos[doc.Ref.ID] = true
			parcerias = append(parcerias, models.ParceriaDeMapa(doc.Ref.ID, doc.Data()))
		}
		iter.Stop()
	}

	sort.SliceStable(parcerias, func(i, j int) bool {
		return parcerias[i].CreatedAt.After(parcerias[j].CreatedAt)
	})
	return parcerias, nil
}
