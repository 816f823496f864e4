package models

import (
	"testing"
	"time"
)

func TestNormalizarComentariosLista(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	d2 := d1.Add(time.Hour)

	comentarios := NormalizarComentarios([]interface{}{
		map[string]interface{}{"id": "c2", "autor": "u2", "apelido": "Ana", "texto": "segundo", "data": d2},
		map[string]interface{}{"id": "c1", "autor": "u1", "apelido": "Beto", "texto": "primeiro", "data": d1},
	})

	if len(comentarios) != 2 {
		t.Fatalf("esperava 2 comentários, obteve %d", len(comentarios))
	}
	if comentarios[0].ID != "c1" || comentarios[1].ID != "c2" {
		t.Errorf("ordenação por data incorreta: %+v", comentarios)
	}
	if comentarios[0].Apelido != "Beto" || comentarios[0].Texto != "primeiro" {
		t.Errorf("campos do comentário incorretos: %+v", comentarios[0])
	}
}

func TestNormalizarComentariosMapaLegado(t *testing.T) {
	d := time.Date(2023, 11, 20, 9, 0, 0, 0, time.UTC)

	comentarios := NormalizarComentarios(map[string]interface{}{
		"user-legado": map[string]interface{}{
			"apelido":    "Carla",
			"comentario": "dica antiga",
			"data":       map[string]interface{}{"seconds": d.Unix()},
		},
	})

	if len(comentarios) != 1 {
		t.Fatalf("esperava 1 comentário, obteve %d", len(comentarios))
	}
	c := comentarios[0]
	if c.AutorID != "user-legado" {
		t.Errorf("autor deveria vir da chave do mapa: %q", c.AutorID)
	}
	if c.Texto != "dica antiga" {
		t.Errorf("texto legado não migrado: %q", c.Texto)
	}
	if c.ID == "" {
		t.Error("entrada legada deveria ganhar um id")
	}
	if !c.Data.Equal(d) {
		t.Errorf("data não normalizada: %v", c.Data)
	}
}

func TestNormalizarComentariosVazio(t *testing.T) {
	if got := NormalizarComentarios(nil); got != nil {
		t.Errorf("nil deveria normalizar para nil, obteve %v", got)
	}
}

func TestNormalizarResultados(t *testing.T) {
	d := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
	resultados := NormalizarResultados(map[string]interface{}{
		"userA": map[string]interface{}{"acertou": true, "data": d},
		"userB": map[string]interface{}{"acertou": false, "data": d.Format(time.RFC3339)},
	})

	if len(resultados) != 2 {
		t.Fatalf("esperava 2 resultados, obteve %d", len(resultados))
	}
	if !resultados["userA"].Acertou || resultados["userB"].Acertou {
		t.Errorf("acertos por usuário incorretos: %+v", resultados)
	}
	if !resultados["userB"].Data.Equal(d) {
		t.Errorf("data do resultado não normalizada: %v", resultados["userB"].Data)
	}
}

func TestResultadoDoUsuarioComFallbackLegado(t *testing.T) {
	acertou := true
	q := Questao{
		UserID:  "dono",
		Acertou: &acertou,
		Resultados: map[string]Resultado{
			"parceiro": {Acertou: false},
		},
	}

	if got, ok := q.ResultadoDoUsuario("parceiro"); !ok || got {
		t.Errorf("resultado do parceiro deveria ser errada: got=%v ok=%v", got, ok)
	}
	// Dono sem entrada no mapa cai no campo legado
	if got, ok := q.ResultadoDoUsuario("dono"); !ok || !got {
		t.Errorf("fallback para acertou legado falhou: got=%v ok=%v", got, ok)
	}
	if _, ok := q.ResultadoDoUsuario("terceiro"); ok {
		t.Error("usuário sem registro não deveria ter resultado")
	}
}

func TestQuestaoDeMapaTriEstado(t *testing.T) {
	sem := QuestaoDeMapa("q1", map[string]interface{}{"enunciado": "x"})
	if sem.Acertou != nil {
		t.Error("questão sem resposta deveria manter acertou nulo")
	}

	com := QuestaoDeMapa("q2", map[string]interface{}{"acertou": false})
	if com.Acertou == nil || *com.Acertou {
		t.Errorf("acertou=false não preservado: %+v", com.Acertou)
	}
}
