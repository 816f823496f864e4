package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/logger"
	"github.com/example/cadernoestudos/pkg/models"
)

// Notifier entrega o lembrete de revisões vencidas a um usuário.
type Notifier interface {
	EnviarLembrete(usuario models.ConfiguracaoUsuario, pendentes, atrasadas int) error
}

// Scheduler varre as revisões pendentes de hora em hora, dentro da janela de
// horário configurada, e avisa os usuários com revisões vencendo hoje ou já
// atrasadas.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	usuarios  database.UsuarioRepository
	revisoes  database.RevisaoRepository

	horaInicio int
	horaFim    int
}

func New(repos *database.Repositorios, notifier Notifier, horaInicio, horaFim int) *Scheduler {
	return &Scheduler{
		scheduler:  gocron.NewScheduler(time.Local),
		notifier:   notifier,
		usuarios:   repos.Usuarios,
		revisoes:   repos.Revisoes,
		horaInicio: horaInicio,
		horaFim:    horaFim,
	}
}

// Start agenda a varredura horária e dispara o scheduler sem bloquear.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.verificarEEnviarLembretes)
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) verificarEEnviarLembretes() {
	horaAtual := time.Now().Hour()
	if horaAtual < s.horaInicio || horaAtual > s.horaFim {
		logger.Debug("hora %d fora da janela de lembretes (%d-%d)", horaAtual, s.horaInicio, s.horaFim)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	usuarios, err := s.usuarios.ListarTodos(ctx)
	if err != nil {
		logger.Error("falha ao listar usuários para lembretes: %v", err)
		return
	}

	for _, usuario := range usuarios {
		pendentes, atrasadas, err := s.contarVencidas(ctx, usuario.UserID)
		if err != nil {
			logger.Error("falha ao contar revisões de %s: %v", usuario.UserID, err)
			continue
		}
		if pendentes == 0 {
			continue
		}
		if err := s.notifier.EnviarLembrete(usuario, pendentes, atrasadas); err != nil {
			logger.Error("falha ao enviar lembrete para %s: %v", usuario.UserID, err)
		}
	}
}

// contarVencidas conta as revisões pendentes com data até o fim de hoje e,
// dentre elas, quantas já passaram de um dia inteiro.
func (s *Scheduler) contarVencidas(ctx context.Context, userID string) (pendentes, atrasadas int, err error) {
	revisoes, err := s.revisoes.BuscarPendentes(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	agora := time.Now()
	fimDoDia := time.Date(agora.Year(), agora.Month(), agora.Day(), 23, 59, 59, 0, agora.Location())
	for _, revisao := range revisoes {
		if revisao.DataRevisao.After(fimDoDia) {
			continue
		}
		pendentes++
		if agora.Sub(revisao.DataRevisao) >= 24*time.Hour {
			atrasadas++
		}
	}
	return pendentes, atrasadas, nil
}

// RunManualCheck força a varredura de um usuário específico.
func (s *Scheduler) RunManualCheck(ctx context.Context, userID string) error {
	usuario, err := s.usuarios.Obter(ctx, userID)
	if err != nil {
		return err
	}
	pendentes, atrasadas, err := s.contarVencidas(ctx, userID)
	if err != nil {
		return err
	}
	if pendentes == 0 {
		return nil
	}
	return s.notifier.EnviarLembrete(*usuario, pendentes, atrasadas)
}
