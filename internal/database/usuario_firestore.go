package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/cadernoestudos/pkg/models"
)

// UsuarioFirestore implementa UsuarioRepository sobre a coleção "usuarios",
// chaveada pelo id do usuário no provedor de autenticação.
type UsuarioFirestore struct {
	client *firestore.Client
}

func NewUsuarioFirestore(client *firestore.Client) *UsuarioFirestore {
	return &UsuarioFirestore{client: client}
}

func (r *UsuarioFirestore) Obter(ctx context.Context, userID string) (*models.ConfiguracaoUsuario, error) {
	doc, err := r.client.Collection(ColecaoUsuarios).Doc(userID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuracao: %w", traduzErroFirestore(err))
	}
	cfg := models.ConfiguracaoDeMapa(doc.Ref.ID, doc.Data())
	return &cfg, nil
}

func (r *UsuarioFirestore) Salvar(ctx context.Context, cfg *models.ConfiguracaoUsuario) error {
	doc := map[string]interface{}{
		"userId":          cfg.UserID,
		"concurso":        cfg.Concurso,
		"cargo":           cfg.Cargo,
		"email":           cfg.Email,
		"meuApelido":      cfg.MeuApelido,
		"parceiroEmail":   cfg.ParceiroEmail,
		"apelidoParceiro": cfg.ApelidoParceiro,
		"updatedAt":       firestore.ServerTimestamp,
	}
	if cfg.Artificial {
		doc["artificial"] = true
	}

	if _, err := r.client.Collection(ColecaoUsuarios).Doc(cfg.UserID).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save configuracao: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *UsuarioFirestore) AtualizarCampos(ctx context.Context, userID string, campos map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(campos)+1)
	for campo, valor := range campos {
		updates = append(updates, firestore.Update{Path: campo, Value: valor})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(ColecaoUsuarios).Doc(userID).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update configuracao: %w", traduzErroFirestore(err))
	}
	return nil
}

func (r *UsuarioFirestore) BuscarPorEmail(ctx context.Context, email string) (*models.ConfiguracaoUsuario, error) {
	iter := r.client.Collection(ColecaoUsuarios).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find usuario by email: %w", traduzErroFirestore(err))
	}
	cfg := models.ConfiguracaoDeMapa(doc.Ref.ID, doc.Data())
	return &cfg, nil
}

// ListarTodos devolve todas as configurações salvas; usado pela varredura de
// lembretes. Linhas artificiais ficam de fora.
func (r *UsuarioFirestore) ListarTodos(ctx context.Context) ([]models.ConfiguracaoUsuario, error) {
	iter := r.client.Collection(ColecaoUsuarios).Documents(ctx)
	defer iter.Stop()

	var usuarios []models.ConfiguracaoUsuario
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list usuarios: %w", traduzErroFirestore(err))
		}
		cfg := models.ConfiguracaoDeMapa(doc.Ref.ID, doc.Data())
		if cfg.Artificial {
			continue
		}
		usuarios = append(usuarios, cfg)
	}
	return usuarios, nil
}

func (r *UsuarioFirestore) Deletar(ctx context.Context, userID string) error {
	if _, err := r.client.Collection(ColecaoUsuarios).Doc(userID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete usuario: %w", traduzErroFirestore(err))
	}
	return nil
}
