package models

import "time"

// Estados do vínculo de parceria.
const (
	ParceriaPendente = "pendente"
	ParceriaAtiva    = "ativa"
	ParceriaRevogada = "revogada"
)

// Parceria é a relação explícita entre dois usuários que compartilham seus
// estudos e caderno de erros. O ciclo de vida é pendente -> ativa ->
// revogada; qualquer um dos dois lados pode revogar.
type Parceria struct {
	ID               string    `json:"id" db:"id" firestore:"-"`
	SolicitanteID    string    `json:"solicitanteId" db:"solicitante_id" firestore:"solicitanteId"`
	SolicitanteEmail string    `json:"solicitanteEmail" db:"solicitante_email" firestore:"solicitanteEmail"`
	ParceiroID       string    `json:"parceiroId" db:"parceiro_id" firestore:"parceiroId"`
	ParceiroEmail    string    `json:"parceiroEmail" db:"parceiro_email" firestore:"parceiroEmail"`
	Status           string    `json:"status" db:"status" firestore:"status"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at" firestore:"updatedAt"`
}

// Envolve informa se o usuário participa da parceria, de qualquer lado.
func (p *Parceria) Envolve(userID string) bool {
	return p.SolicitanteID == userID || p.ParceiroID == userID
}

// OutroLado devolve o id do outro participante.
func (p *Parceria) OutroLado(userID string) string {
	if p.SolicitanteID == userID {
		return p.ParceiroID
	}
	return p.SolicitanteID
}

// ParceriaDeMapa monta uma Parceria a partir do documento cru.
func ParceriaDeMapa(id string, dados map[string]interface{}) Parceria {
	return Parceria{
		ID:               id,
		SolicitanteID:    comoString(dados["solicitanteId"]),
		SolicitanteEmail: comoString(dados["solicitanteEmail"]),
		ParceiroID:       comoString(dados["parceiroId"]),
		ParceiroEmail:    comoString(dados["parceiroEmail"]),
		Status:           comoString(dados["status"]),
		CreatedAt:        NormalizarData(dados["createdAt"]),
		UpdatedAt:        NormalizarData(dados["updatedAt"]),
	}
}
