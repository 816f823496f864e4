package service

import (
	"context"
	"testing"

	"github.com/example/cadernoestudos/pkg/models"
)

func TestConfiguracaoRoundTrip(t *testing.T) {
	repos := novoRepos(t)
	svc := NewUsuarioService(repos)
	ctx := context.Background()

	cfg, err := svc.ObterConfiguracao(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("ObterConfiguracao: %v", err)
	}
	if cfg != nil {
		t.Fatalf("esperava nil antes do primeiro salvamento, veio %+v", cfg)
	}

	err = svc.SalvarConfiguracao(ctx, &models.ConfiguracaoUsuario{
		UserID:     "usuario-1",
		Concurso:   "Tribunal de Justiça",
		Cargo:      "Analista",
		Email:      "maria@example.com",
		MeuApelido: "Maria",
	})
	if err != nil {
		t.Fatalf("SalvarConfiguracao: %v", err)
	}

	cfg, err = svc.ObterConfiguracao(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("ObterConfiguracao: %v", err)
	}
	if cfg == nil || cfg.Concurso != "Tribunal de Justiça" || cfg.MeuApelido != "Maria" {
		t.Errorf("configuração lida = %+v", cfg)
	}

	// Upsert: salvar de novo sobrescreve
	err = svc.SalvarConfiguracao(ctx, &models.ConfiguracaoUsuario{
		UserID:   "usuario-1",
		Concurso: "Receita Federal",
		Cargo:    "Auditor",
		Email:    "maria@example.com",
	})
	if err != nil {
		t.Fatalf("SalvarConfiguracao (upsert): %v", err)
	}
	cfg, err = svc.ObterConfiguracao(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("ObterConfiguracao: %v", err)
	}
	if cfg.Concurso != "Receita Federal" {
		t.Errorf("concurso = %q após upsert", cfg.Concurso)
	}
}

func TestDefinirCamposDeParceiroSemConfiguracaoPrevia(t *testing.T) {
	repos := novoRepos(t)
	svc := NewUsuarioService(repos)
	ctx := context.Background()

	// Nenhuma configuração salva ainda: os setters criam o documento
	if err := svc.DefinirEmailParceiro(ctx, "usuario-1", "parceiro@example.com"); err != nil {
		t.Fatalf("DefinirEmailParceiro: %v", err)
	}
	if err := svc.DefinirApelidoParceiro(ctx, "usuario-1", "Zé"); err != nil {
		t.Fatalf("DefinirApelidoParceiro: %v", err)
	}

	cfg, err := svc.ObterConfiguracao(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("ObterConfiguracao: %v", err)
	}
	if cfg == nil || cfg.ParceiroEmail != "parceiro@example.com" || cfg.ApelidoParceiro != "Zé" {
		t.Errorf("configuração = %+v", cfg)
	}

	if err := svc.RemoverParceiro(ctx, "usuario-1"); err != nil {
		t.Fatalf("RemoverParceiro: %v", err)
	}
	cfg, err = svc.ObterConfiguracao(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("ObterConfiguracao: %v", err)
	}
	if cfg.ParceiroEmail != "" || cfg.ApelidoParceiro != "" {
		t.Errorf("campos de parceiro não foram limpos: %+v", cfg)
	}
}

func TestBuscarUsuarioPorEmail(t *testing.T) {
	repos := novoRepos(t)
	svc := NewUsuarioService(repos)
	ctx := context.Background()

	encontrado, err := svc.BuscarUsuarioPorEmail(ctx, "ninguem@example.com")
	if err != nil {
		t.Fatalf("BuscarUsuarioPorEmail: %v", err)
	}
	if encontrado != nil {
		t.Fatalf("esperava nil para email desconhecido, veio %+v", encontrado)
	}

	err = svc.SalvarConfiguracao(ctx, &models.ConfiguracaoUsuario{
		UserID: "usuario-2",
		Email:  "joao@example.com",
	})
	if err != nil {
		t.Fatalf("SalvarConfiguracao: %v", err)
	}

	encontrado, err = svc.BuscarUsuarioPorEmail(ctx, "joao@example.com")
	if err != nil {
		t.Fatalf("BuscarUsuarioPorEmail: %v", err)
	}
	if encontrado == nil || encontrado.UserID != "usuario-2" {
		t.Errorf("encontrado = %+v", encontrado)
	}
}

func TestBuscarUsuarioPorEmailPodaLinhaArtificial(t *testing.T) {
	repos := novoRepos(t)
	svc := NewUsuarioService(repos)
	ctx := context.Background()

	// Resíduo de uma revisão antiga do vínculo: linha criada só para marcar
	// o email do parceiro
	artificial := &models.ConfiguracaoUsuario{
		UserID:     "placeholder-1",
		Email:      "fantasma@example.com",
		Artificial: true,
	}
	if err := repos.Usuarios.Salvar(ctx, artificial); err != nil {
		t.Fatalf("Salvar artificial: %v", err)
	}

	encontrado, err := svc.BuscarUsuarioPorEmail(ctx, "fantasma@example.com")
	if err != nil {
		t.Fatalf("BuscarUsuarioPorEmail: %v", err)
	}
	if encontrado != nil {
		t.Errorf("linha artificial foi devolvida: %+v", encontrado)
	}

	// A poda apaga a linha de fato
	restante, err := svc.ObterConfiguracao(ctx, "placeholder-1")
	if err != nil {
		t.Fatalf("ObterConfiguracao: %v", err)
	}
	if restante != nil {
		t.Errorf("linha artificial ainda existe: %+v", restante)
	}
}
