package models

import "time"

// Estudo representa um assunto estudado pelo usuário
type Estudo struct {
	ID        string    `json:"id" db:"id" firestore:"-"`
	Concurso  string    `json:"concurso,omitempty" db:"concurso" firestore:"concurso,omitempty"`
	Cargo     string    `json:"cargo,omitempty" db:"cargo" firestore:"cargo,omitempty"`
	Materia   string    `json:"materia" db:"materia" firestore:"materia"`
	Assunto   string    `json:"assunto" db:"assunto" firestore:"assunto"`
	UserID    string    `json:"userId" db:"user_id" firestore:"userId"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" firestore:"updatedAt"`
}

// EstudoDeMapa monta um Estudo a partir do documento cru do backend,
// normalizando as duas formas de timestamp.
func EstudoDeMapa(id string, dados map[string]interface{}) Estudo {
	return Estudo{
		ID:        id,
		Concurso:  comoString(dados["concurso"]),
		Cargo:     comoString(dados["cargo"]),
		Materia:   comoString(dados["materia"]),
		Assunto:   comoString(dados["assunto"]),
		UserID:    comoString(dados["userId"]),
		CreatedAt: NormalizarData(dados["createdAt"]),
		UpdatedAt: NormalizarData(dados["updatedAt"]),
	}
}
