package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCriarEListarEstudo(t *testing.T) {
	repos := novoRepos(t)
	svc := NewEstudoService(repos)
	ctx := context.Background()

	id, err := svc.CriarEstudo(ctx, NovoEstudo{
		UserID:  "usuario-1",
		Materia: "Direito Constitucional",
		Assunto: "Princípios fundamentais da Constituição",
	})
	if err != nil {
		t.Fatalf("CriarEstudo: %v", err)
	}
	if id == "" {
		t.Fatal("CriarEstudo devolveu id vazio")
	}

	estudos, err := svc.BuscarEstudosPorUsuario(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("BuscarEstudosPorUsuario: %v", err)
	}
	if len(estudos) != 1 {
		t.Fatalf("esperava 1 estudo, veio %d", len(estudos))
	}
	if estudos[0].ID != id {
		t.Errorf("id = %q, esperava %q", estudos[0].ID, id)
	}
	if estudos[0].Materia != "Direito Constitucional" {
		t.Errorf("materia = %q", estudos[0].Materia)
	}
	if estudos[0].Assunto != "Princípios fundamentais da Constituição" {
		t.Errorf("assunto = %q", estudos[0].Assunto)
	}
	if estudos[0].CreatedAt.IsZero() {
		t.Error("createdAt não foi preenchido")
	}
}

func TestCriarEstudoValidacao(t *testing.T) {
	repos := novoRepos(t)
	svc := NewEstudoService(repos)
	ctx := context.Background()

	casos := []struct {
		nome    string
		materia string
		assunto string
	}{
		{"materia curta demais", "A", "Assunto longo o suficiente"},
		{"materia longa demais", strings.Repeat("a", 101), "Assunto longo o suficiente"},
		{"assunto curto demais", "Matemática", "Oi"},
		{"assunto longo demais", "Matemática", strings.Repeat("a", 1001)},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := svc.CriarEstudo(ctx, NovoEstudo{
				UserID:  "usuario-1",
				Materia: caso.materia,
				Assunto: caso.assunto,
			})
			if !errors.Is(err, ErrValidacao) {
				t.Errorf("esperava ErrValidacao, veio %v", err)
			}
		})
	}
}

func TestCriarEstudoSanitizaEntrada(t *testing.T) {
	repos := novoRepos(t)
	svc := NewEstudoService(repos)
	ctx := context.Background()

	id, err := svc.CriarEstudo(ctx, NovoEstudo{
		UserID:  "usuario-1",
		Materia: "  Português  ",
		Assunto: "<script>alert('x')</script>Interpretação de texto",
	})
	if err != nil {
		t.Fatalf("CriarEstudo: %v", err)
	}

	estudo, err := svc.BuscarEstudoPorID(ctx, id)
	if err != nil {
		t.Fatalf("BuscarEstudoPorID: %v", err)
	}
	if estudo.Materia != "Português" {
		t.Errorf("materia = %q, esperava aparada", estudo.Materia)
	}
	if strings.Contains(estudo.Assunto, "<script>") {
		t.Errorf("assunto reteve marcação: %q", estudo.Assunto)
	}
}

func TestAtualizarEDeletarEstudo(t *testing.T) {
	repos := novoRepos(t)
	svc := NewEstudoService(repos)
	ctx := context.Background()

	id, err := svc.CriarEstudo(ctx, NovoEstudo{
		UserID:  "usuario-1",
		Materia: "Matemática",
		Assunto: "Equações de segundo grau",
	})
	if err != nil {
		t.Fatalf("CriarEstudo: %v", err)
	}

	if err := svc.AtualizarEstudo(ctx, id, map[string]interface{}{"materia": "Física"}); err != nil {
		t.Fatalf("AtualizarEstudo: %v", err)
	}
	estudo, err := svc.BuscarEstudoPorID(ctx, id)
	if err != nil {
		t.Fatalf("BuscarEstudoPorID: %v", err)
	}
	if estudo.Materia != "Física" {
		t.Errorf("materia = %q após atualização", estudo.Materia)
	}

	if err := svc.DeletarEstudo(ctx, id); err != nil {
		t.Fatalf("DeletarEstudo: %v", err)
	}
	if _, err := svc.BuscarEstudoPorID(ctx, id); !errors.Is(err, ErrNaoEncontrado) {
		t.Errorf("esperava ErrNaoEncontrado após exclusão, veio %v", err)
	}
}

func TestAtualizarEstudoInexistente(t *testing.T) {
	repos := novoRepos(t)
	svc := NewEstudoService(repos)

	err := svc.AtualizarEstudo(context.Background(), "nao-existe", map[string]interface{}{"materia": "História"})
	if !errors.Is(err, ErrNaoEncontrado) {
		t.Errorf("esperava ErrNaoEncontrado, veio %v", err)
	}
}
