package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/cadernoestudos/internal/auth"
	"github.com/example/cadernoestudos/internal/config"
	"github.com/example/cadernoestudos/internal/database"
	"github.com/example/cadernoestudos/internal/logger"
	"github.com/example/cadernoestudos/internal/notify"
	"github.com/example/cadernoestudos/internal/scheduler"
	"github.com/example/cadernoestudos/internal/security"
	"github.com/example/cadernoestudos/internal/server"
	"github.com/example/cadernoestudos/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, provider, fechar, err := montarBackend(ctx, cfg)
	if err != nil {
		logger.Fatalf("Falha ao inicializar o backend: %v", err)
	}
	defer fechar()

	usuarios := service.NewUsuarioService(repos)
	deps := server.Deps{
		Provider:      provider,
		Estudos:       service.NewEstudoService(repos),
		Questoes:      service.NewQuestaoService(repos, nil),
		Revisoes:      service.NewRevisaoService(repos, nil),
		Usuarios:      usuarios,
		Parcerias:     service.NewParceriaService(repos, usuarios),
		Desempenho:    service.NewDesempenhoService(repos),
		LimiterLogin:  security.NewRateLimiter(security.LoginTentativasMax, security.JanelaTentativas, nil),
		LimiterSignup: security.NewRateLimiter(security.SignupTentativasMax, security.JanelaTentativas, nil),
	}
	srv := server.New(deps)

	agenda := scheduler.New(repos, montarNotificador(cfg), cfg.ReminderStartHour, cfg.ReminderEndHour)
	agenda.Start()
	defer agenda.Stop()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("Servidor ouvindo na porta %s (driver %s)", cfg.Port, cfg.StorageDriver)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Falha no servidor HTTP: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Sinal recebido: %v, encerrando", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Erro no encerramento do servidor: %v", err)
	}
	logger.Info("Servidor encerrado")
}

// montarBackend escolhe o driver de armazenamento e o provedor de identidade
// correspondente: Firestore + Firebase Auth no modo gerenciado, sqlx + contas
// locais nos modos sqlite/postgres.
func montarBackend(ctx context.Context, cfg *config.Config) (*database.Repositorios, auth.Provider, func(), error) {
	if cfg.StorageDriver == "firestore" {
		app, err := database.NewFirebaseApp(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
		if err != nil {
			return nil, nil, nil, err
		}
		client, err := database.NewFirestoreClient(ctx, app)
		if err != nil {
			return nil, nil, nil, err
		}
		provider, err := auth.NewFirebase(ctx, app, cfg.FirebaseWebAPIKey)
		if err != nil {
			client.Close()
			return nil, nil, nil, err
		}
		return database.NewFirestoreRepositorios(client), provider, func() { client.Close() }, nil
	}

	db, err := database.Connect(cfg.StorageDriver, cfg.DatabaseURL, cfg.DataDir)
	if err != nil {
		return nil, nil, nil, err
	}
	provider := auth.NewLocal(database.NewContaSQL(db), cfg.JWTSecret, nil)
	return database.NewSQLRepositorios(db), provider, func() { db.Close() }, nil
}

func montarNotificador(cfg *config.Config) scheduler.Notifier {
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		telegram, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("Telegram indisponível (%v), lembretes irão para o log", err)
			return notify.NewLog()
		}
		return telegram
	}
	return notify.NewLog()
}
