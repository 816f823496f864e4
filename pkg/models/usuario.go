package models

import "time"

// ConfiguracaoUsuario é o documento de perfil/configuração, chaveado pelo
// id do usuário no provedor de autenticação. Artificial marca linhas
// residuais criadas por uma revisão antiga do vínculo de parceria; elas são
// podadas quando encontradas (ver UsuarioService.BuscarUsuarioPorEmail).
type ConfiguracaoUsuario struct {
	UserID          string    `json:"userId" db:"user_id" firestore:"userId"`
	Concurso        string    `json:"concurso" db:"concurso" firestore:"concurso"`
	Cargo           string    `json:"cargo" db:"cargo" firestore:"cargo"`
	Email           string    `json:"email,omitempty" db:"email" firestore:"email,omitempty"`
	MeuApelido      string    `json:"meuApelido,omitempty" db:"meu_apelido" firestore:"meuApelido,omitempty"`
	ParceiroEmail   string    `json:"parceiroEmail,omitempty" db:"parceiro_email" firestore:"parceiroEmail,omitempty"`
	ApelidoParceiro string    `json:"apelidoParceiro,omitempty" db:"apelido_parceiro" firestore:"apelidoParceiro,omitempty"`
	Artificial      bool      `json:"artificial,omitempty" db:"artificial" firestore:"artificial,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at" firestore:"updatedAt"`
}

// ConfiguracaoDeMapa monta a configuração a partir do documento cru.
func ConfiguracaoDeMapa(userID string, dados map[string]interface{}) ConfiguracaoUsuario {
	artificial, _ := comoBool(dados["artificial"])
	return ConfiguracaoUsuario{
		UserID:          userID,
		Concurso:        comoString(dados["concurso"]),
		Cargo:           comoString(dados["cargo"]),
		Email:           comoString(dados["email"]),
		MeuApelido:      comoString(dados["meuApelido"]),
		ParceiroEmail:   comoString(dados["parceiroEmail"]),
		ApelidoParceiro: comoString(dados["apelidoParceiro"]),
		Artificial:      artificial,
		UpdatedAt:       NormalizarData(dados["updatedAt"]),
	}
}
