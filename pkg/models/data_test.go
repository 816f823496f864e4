package models

import (
	"testing"
	"time"
)

func TestNormalizarDataFormas(t *testing.T) {
	esperado := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)

	casos := []struct {
		nome    string
		entrada interface{}
	}{
		{"nativo", esperado},
		{"ponteiro", &esperado},
		{"wrapper de serverTimestamp", map[string]interface{}{"seconds": esperado.Unix(), "nanoseconds": 0}},
		{"wrapper com float64", map[string]interface{}{"seconds": float64(esperado.Unix())}},
		{"rfc3339", esperado.Format(time.RFC3339)},
		{"sqlite", "2024-03-10 12:30:00"},
		{"unix int64", esperado.Unix()},
	}

	for _, c := range casos {
		got := NormalizarData(c.entrada)
		if !got.Equal(esperado) {
			t.Errorf("%s: esperava %v, obteve %v", c.nome, esperado, got)
		}
	}
}

func TestNormalizarDataInvalida(t *testing.T) {
	for _, entrada := range []interface{}{nil, "não é data", map[string]interface{}{"foo": 1}, struct{}{}} {
		if got := NormalizarData(entrada); !got.IsZero() {
			t.Errorf("entrada %v: esperava zero value, obteve %v", entrada, got)
		}
	}
}

func TestEstudoDeMapaNormalizaTimestamps(t *testing.T) {
	criado := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	estudo := EstudoDeMapa("abc", map[string]interface{}{
		"materia":   "Direito Constitucional",
		"assunto":   "Controle de constitucionalidade",
		"userId":    "u1",
		"createdAt": map[string]interface{}{"seconds": criado.Unix()},
		"updatedAt": criado,
	})

	if estudo.ID != "abc" || estudo.Materia != "Direito Constitucional" || estudo.UserID != "u1" {
		t.Fatalf("campos básicos incorretos: %+v", estudo)
	}
	if !estudo.CreatedAt.Equal(criado) {
		t.Errorf("createdAt não normalizado: %v", estudo.CreatedAt)
	}
	if !estudo.UpdatedAt.Equal(criado) {
		t.Errorf("updatedAt não normalizado: %v", estudo.UpdatedAt)
	}
}
