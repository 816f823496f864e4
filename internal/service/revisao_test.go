package service

import (
	"context"
	"testing"
	"time"

	"github.com/example/cadernoestudos/pkg/models"
)

func TestMarcarParaRevisaoComDataPadrao(t *testing.T) {
	repos := novoRepos(t)
	fixo := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewRevisaoService(repos, func() time.Time { return fixo })
	ctx := context.Background()

	id, err := svc.MarcarParaRevisao(ctx, "estudo-1", "usuario-1", time.Time{})
	if err != nil {
		t.Fatalf("MarcarParaRevisao: %v", err)
	}

	revisao, err := svc.BuscarRevisaoPorID(ctx, id)
	if err != nil {
		t.Fatalf("BuscarRevisaoPorID: %v", err)
	}
	if revisao.Status != models.RevisaoPendente {
		t.Errorf("status = %q, esperava pendente", revisao.Status)
	}
	esperada := fixo.AddDate(0, 0, DiasRevisaoPadrao)
	if !revisao.DataRevisao.Equal(esperada) {
		t.Errorf("dataRevisao = %v, esperava %v", revisao.DataRevisao, esperada)
	}
	if !revisao.DataUltimoEstudo.Equal(fixo) {
		t.Errorf("dataUltimoEstudo = %v, esperava %v", revisao.DataUltimoEstudo, fixo)
	}
}

func TestConcluirRevisaoIdempotente(t *testing.T) {
	repos := novoRepos(t)
	svc := NewRevisaoService(repos, nil)
	ctx := context.Background()

	id, err := svc.MarcarParaRevisao(ctx, "estudo-1", "usuario-1", time.Time{})
	if err != nil {
		t.Fatalf("MarcarParaRevisao: %v", err)
	}

	if err := svc.ConcluirRevisao(ctx, id); err != nil {
		t.Fatalf("primeira conclusão: %v", err)
	}
	if err := svc.ConcluirRevisao(ctx, id); err != nil {
		t.Fatalf("segunda conclusão deveria ser idempotente: %v", err)
	}

	revisao, err := svc.BuscarRevisaoPorID(ctx, id)
	if err != nil {
		t.Fatalf("BuscarRevisaoPorID: %v", err)
	}
	if revisao.Status != models.RevisaoConcluida {
		t.Errorf("status = %q, esperava concluida", revisao.Status)
	}
}

func TestFluxoEstudoRevisaoConclusao(t *testing.T) {
	repos := novoRepos(t)
	estudos := NewEstudoService(repos)
	revisoes := NewRevisaoService(repos, nil)
	ctx := context.Background()

	estudoID, err := estudos.CriarEstudo(ctx, NovoEstudo{
		UserID:  "usuario-1",
		Materia: "Matéria A",
		Assunto: "Assunto B com tamanho válido",
	})
	if err != nil {
		t.Fatalf("CriarEstudo: %v", err)
	}

	revisaoID, err := revisoes.MarcarParaRevisao(ctx, estudoID, "usuario-1", time.Now().AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("MarcarParaRevisao: %v", err)
	}

	pendentes, err := revisoes.BuscarRevisoesPendentes(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("BuscarRevisoesPendentes: %v", err)
	}
	if len(pendentes) != 1 || pendentes[0].ID != revisaoID {
		t.Fatalf("esperava a revisão agendada entre as pendentes, veio %v", pendentes)
	}

	if err := revisoes.ConcluirRevisao(ctx, revisaoID); err != nil {
		t.Fatalf("ConcluirRevisao: %v", err)
	}

	pendentes, err = revisoes.BuscarRevisoesPendentes(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("BuscarRevisoesPendentes: %v", err)
	}
	for _, revisao := range pendentes {
		if revisao.ID == revisaoID {
			t.Error("revisão concluída continua entre as pendentes")
		}
	}

	todas, err := revisoes.BuscarRevisoesPorUsuario(ctx, "usuario-1")
	if err != nil {
		t.Fatalf("BuscarRevisoesPorUsuario: %v", err)
	}
	encontrada := false
	for _, revisao := range todas {
		if revisao.ID == revisaoID {
			encontrada = true
			if revisao.Status != models.RevisaoConcluida {
				t.Errorf("status = %q, esperava concluida", revisao.Status)
			}
		}
	}
	if !encontrada {
		t.Error("revisão concluída sumiu da listagem completa")
	}
}

func TestCalcularDiasAtraso(t *testing.T) {
	hoje := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if dias := CalcularDiasAtraso(hoje.AddDate(0, 0, -3), hoje); dias != 3 {
		t.Errorf("três dias atrás: veio %d, esperava 3", dias)
	}
	if dias := CalcularDiasAtraso(hoje, hoje); dias != 0 {
		t.Errorf("hoje: veio %d, esperava 0", dias)
	}
	if dias := CalcularDiasAtraso(hoje.AddDate(0, 0, 2), hoje); dias > 0 {
		t.Errorf("data futura: veio %d, esperava valor não positivo", dias)
	}
}

func TestSugerirProximaData(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		concluidas int
		dias       int
	}{
		{0, 1},
		{1, 2},
		{3, 7},
		{6, 40},
		{99, 40}, // além da escada repete o maior intervalo
		{-1, 1},
	}
	for _, caso := range casos {
		esperada := base.AddDate(0, 0, caso.dias)
		if data := SugerirProximaData(base, caso.concluidas); !data.Equal(esperada) {
			t.Errorf("concluidas=%d: veio %v, esperava %v", caso.concluidas, data, esperada)
		}
	}
}
