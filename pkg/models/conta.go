package models

import "time"

// Conta é a credencial local de autenticação (modo sem Firebase).
// No modo Firestore a autenticação fica inteira no provedor externo e esta
// tabela não é usada.
type Conta struct {
	UserID    string    `json:"userId" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	SenhaHash string    `json:"-" db:"senha_hash"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
