package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Questao representa uma questão errada registrada no caderno de erros.
// Acertou é o campo legado de resultado do dono (tri-estado via ponteiro);
// Resultados guarda o resultado de cada usuário (dono e parceiro) de forma
// independente sobre a mesma questão compartilhada.
type Questao struct {
	ID          string               `json:"id" db:"id" firestore:"-"`
	EstudoID    string               `json:"estudoId" db:"estudo_id" firestore:"estudoId"`
	UserID      string               `json:"userId" db:"user_id" firestore:"userId"`
	Enunciado   string               `json:"enunciado" db:"enunciado" firestore:"enunciado"`
	Comentario  string               `json:"comentario" db:"comentario" firestore:"comentario"`
	Acertou     *bool                `json:"acertou,omitempty" firestore:"acertou,omitempty"`
	Comentarios []Comentario         `json:"comentarios,omitempty" firestore:"comentarios,omitempty"`
	Resultados  map[string]Resultado `json:"resultados,omitempty" firestore:"resultados,omitempty"`
	CreatedAt   time.Time            `json:"createdAt" db:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" db:"updated_at" firestore:"updatedAt"`
}

// Comentario é a forma canônica de um comentário de questão.
type Comentario struct {
	ID      string    `json:"id" firestore:"id"`
	AutorID string    `json:"autor" firestore:"autor"`
	Apelido string    `json:"apelido" firestore:"apelido"`
	Texto   string    `json:"texto" firestore:"texto"`
	Data    time.Time `json:"data" firestore:"data"`
}

// Resultado registra o desfecho de um usuário sobre uma questão.
type Resultado struct {
	Acertou bool      `json:"acertou" firestore:"acertou"`
	Data    time.Time `json:"data" firestore:"data"`
}

// QuestaoDeMapa monta uma Questao a partir do documento cru do backend,
// normalizando timestamps, o mapa de resultados e os dois formatos
// históricos de comentários.
func QuestaoDeMapa(id string, dados map[string]interface{}) Questao {
	q := Questao{
		ID:          id,
		EstudoID:    comoString(dados["estudoId"]),
		UserID:      comoString(dados["userId"]),
		Enunciado:   comoString(dados["enunciado"]),
		Comentario:  comoString(dados["comentario"]),
		Comentarios: NormalizarComentarios(dados["comentarios"]),
		Resultados:  NormalizarResultados(dados["resultados"]),
		CreatedAt:   NormalizarData(dados["createdAt"]),
		UpdatedAt:   NormalizarData(dados["updatedAt"]),
	}
	if acertou, ok := comoBool(dados["acertou"]); ok {
		q.Acertou = &acertou
	}
	return q
}

// NormalizarComentarios unifica os dois formatos gravados ao longo do tempo:
// a lista ordenada de objetos de comentário e o mapa legado chaveado por
// userId. A saída é sempre a sequência canônica, ordenada por data.
func NormalizarComentarios(v interface{}) []Comentario {
	var comentarios []Comentario

	switch lista := v.(type) {
	case []Comentario:
		comentarios = append(comentarios, lista...)
	case []interface{}:
		for _, item := range lista {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			comentarios = append(comentarios, comentarioDeMapa("", m))
		}
	case map[string]interface{}:
		// Formato legado: chave do mapa é o userId do autor
		for autorID, item := range lista {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			comentarios = append(comentarios, comentarioDeMapa(autorID, m))
		}
	}

	sort.SliceStable(comentarios, func(i, j int) bool {
		if comentarios[i].Data.Equal(comentarios[j].Data) {
			return comentarios[i].ID < comentarios[j].ID
		}
		return comentarios[i].Data.Before(comentarios[j].Data)
	})
	return comentarios
}

func comentarioDeMapa(autorLegado string, m map[string]interface{}) Comentario {
	c := Comentario{
		ID:      comoString(m["id"]),
		AutorID: comoString(m["autor"]),
		Apelido: comoString(m["apelido"]),
		Texto:   comoString(m["texto"]),
		Data:    NormalizarData(m["data"]),
	}
	if c.Texto == "" {
		c.Texto = comoString(m["comentario"])
	}
	if c.AutorID == "" {
		c.AutorID = autorLegado
	}
	if c.ID == "" {
		// Entradas legadas não tinham id próprio
		c.ID = uuid.NewString()
	}
	return c
}

// NormalizarResultados converte o mapa cru de resultados por usuário.
func NormalizarResultados(v interface{}) map[string]Resultado {
	switch m := v.(type) {
	case map[string]Resultado:
		return m
	case map[string]interface{}:
		if len(m) == 0 {
			return nil
		}
		resultados := make(map[string]Resultado, len(m))
		for userID, item := range m {
			campos, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			acertou, _ := comoBool(campos["acertou"])
			resultados[userID] = Resultado{
				Acertou: acertou,
				Data:    NormalizarData(campos["data"]),
			}
		}
		return resultados
	}
	return nil
}

// ResultadoDoUsuario devolve o desfecho registrado para um usuário,
// preferindo o mapa de resultados e caindo no campo legado quando o
// usuário é o dono da questão.
func (q *Questao) ResultadoDoUsuario(userID string) (bool, bool) {
	if r, ok := q.Resultados[userID]; ok {
		return r.Acertou, true
	}
	if userID == q.UserID && q.Acertou != nil {
		return *q.Acertou, true
	}
	return false, false
}
