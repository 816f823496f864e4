package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reúne as variáveis de ambiente da aplicação.
type Config struct {
	Port          string
	LogLevel      string
	StorageDriver string // firestore | sqlite | postgres
	DatabaseURL   string
	DataDir       string

	FirebaseProjectID   string
	FirebaseCredentials string // caminho do arquivo de service account
	FirebaseWebAPIKey   string // usado no signInWithPassword do Identity Toolkit

	JWTSecret string

	TelegramBotToken string
	TelegramChatID   string

	ReminderStartHour int
	ReminderEndHour   int
}

// Load carrega a configuração do ambiente, com fallback para um arquivo .env
// em desenvolvimento.
func Load() *Config {
	// Não falha se o .env não existir; produção usa variáveis reais
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		StorageDriver:       getEnv("STORAGE_DRIVER", "sqlite"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DataDir:             getEnv("DATA_DIR", "data"),
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseWebAPIKey:   getEnv("FIREBASE_WEB_API_KEY", ""),
		JWTSecret:           getEnv("JWT_SECRET", "troque_este_segredo_em_producao"),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      getEnv("TELEGRAM_CHAT_ID", ""),
		ReminderStartHour:   getEnvInt("REMINDER_START_HOUR", 8),
		ReminderEndHour:     getEnvInt("REMINDER_END_HOUR", 22),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var n int
	for _, r := range value {
		if r < '0' || r > '9' {
			log.Printf("Config: %s inválido (%q), usando padrão %d", key, value, fallback)
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}
