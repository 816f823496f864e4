package models

import "time"

// Status de uma revisão. A transição é de mão única: pendente -> concluida.
const (
	RevisaoPendente  = "pendente"
	RevisaoConcluida = "concluida"
)

// Revisao representa um lembrete agendado de revisão de um estudo
type Revisao struct {
	ID               string    `json:"id" db:"id" firestore:"-"`
	EstudoID         string    `json:"estudoId" db:"estudo_id" firestore:"estudoId"`
	UserID           string    `json:"userId" db:"user_id" firestore:"userId"`
	DataUltimoEstudo time.Time `json:"dataUltimoEstudo" db:"data_ultimo_estudo" firestore:"dataUltimoEstudo"`
	DataRevisao      time.Time `json:"dataRevisao" db:"data_revisao" firestore:"dataRevisao"`
	Status           string    `json:"status" db:"status" firestore:"status"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at" firestore:"createdAt"`
}

// RevisaoDeMapa monta uma Revisao a partir do documento cru do backend.
func RevisaoDeMapa(id string, dados map[string]interface{}) Revisao {
	status := comoString(dados["status"])
	if status == "" {
		status = RevisaoPendente
	}
	return Revisao{
		ID:               id,
		EstudoID:         comoString(dados["estudoId"]),
		UserID:           comoString(dados["userId"]),
		DataUltimoEstudo: NormalizarData(dados["dataUltimoEstudo"]),
		DataRevisao:      NormalizarData(dados["dataRevisao"]),
		Status:           status,
		CreatedAt:        NormalizarData(dados["createdAt"]),
	}
}
