package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Nomes das coleções no backend gerenciado.
const (
	ColecaoEstudos   = "estudos"
	ColecaoRevisoes  = "revisoes"
	ColecaoQuestoes  = "questoes"
	ColecaoUsuarios  = "usuarios"
	ColecaoParcerias = "parcerias"
)

// NewFirebaseApp inicializa o app do Firebase com o service account.
func NewFirebaseApp(ctx context.Context, projectID, credentialsFile string) (*firebase.App, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %v", err)
	}
	return app, nil
}

// NewFirestoreClient abre o cliente do Firestore a partir do app.
func NewFirestoreClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %v", err)
	}
	return client, nil
}

// NewFirestoreRepositorios agrupa os repositórios do driver Firestore.
func NewFirestoreRepositorios(client *firestore.Client) *Repositorios {
	return &Repositorios{
		Estudos:   NewEstudoFirestore(client),
		Revisoes:  NewRevisaoFirestore(client),
		Questoes:  NewQuestaoFirestore(client),
		Usuarios:  NewUsuarioFirestore(client),
		Parcerias: NewParceriaFirestore(client),
	}
}

