package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Firebase delega cadastro e verificação de token ao Admin SDK e o login ao
// endpoint REST do Identity Toolkit (o Admin SDK não expõe login por senha).
type Firebase struct {
	client    *firebaseauth.Client
	webAPIKey string
	http      *http.Client
}

func NewFirebase(ctx context.Context, app *firebase.App, webAPIKey string) (*Firebase, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %v", err)
	}
	return &Firebase{
		client:    client,
		webAPIKey: webAPIKey,
		http:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (f *Firebase) Cadastrar(ctx context.Context, email, senha string) (*Sessao, error) {
	params := (&firebaseauth.UserToCreate{}).Email(email).Password(senha)
	if _, err := f.client.CreateUser(ctx, params); err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailEmUso
		}
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	// O login logo em seguida emite o idToken da sessão
	return f.Entrar(ctx, email, senha)
}

func (f *Firebase) Entrar(ctx context.Context, email, senha string) (*Sessao, error) {
	corpo, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          senha,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign-in request: %v", err)
	}

	url := fmt.Sprintf("%s?key=%s", identityToolkitURL, f.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(corpo))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// O Identity Toolkit responde 400 para credenciais erradas
		if resp.StatusCode == http.StatusBadRequest {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, fmt.Errorf("sign-in request returned status %d", resp.StatusCode)
	}

	var dados struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dados); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %v", err)
	}

	return &Sessao{UserID: dados.LocalID, Email: dados.Email, Token: dados.IDToken}, nil
}

func (f *Firebase) Verificar(ctx context.Context, token string) (*Identidade, error) {
	decodificado, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	email, _ := decodificado.Claims["email"].(string)
	return &Identidade{UserID: decodificado.UID, Email: email}, nil
}
