package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect abre a conexão com o armazenamento local (sqlite ou postgres) e
// garante o esquema.
func Connect(driver, databaseURL, dataDir string) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	switch driver {
	case "sqlite":
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath := filepath.Join(dataDir, "caderno.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite não suporta múltiplos escritores
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case "postgres":
		db, err = sqlx.Connect("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}

	if err := initializeSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// NewSQLRepositorios agrupa os repositórios do driver local.
func NewSQLRepositorios(db *sqlx.DB) *Repositorios {
	return &Repositorios{
		Estudos:   NewEstudoSQL(db),
		Revisoes:  NewRevisaoSQL(db),
		Questoes:  NewQuestaoSQL(db),
		Usuarios:  NewUsuarioSQL(db),
		Parcerias: NewParceriaSQL(db),
	}
}

// initializeSchema cria as tabelas se não existirem. As colunas seguem os
// campos das coleções do backend gerenciado para manter interoperabilidade
// dos dados; comentarios e resultados ficam como JSON em colunas de texto.
func initializeSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS estudos (
			id TEXT PRIMARY KEY,
			concurso TEXT NOT NULL DEFAULT '',
			cargo TEXT NOT NULL DEFAULT '',
			materia TEXT NOT NULL,
			assunto TEXT NOT NULL,
			user_id TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_estudos_user ON estudos(user_id)`,
		`CREATE TABLE IF NOT EXISTS revisoes (
			id TEXT PRIMARY KEY,
			estudo_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			data_ultimo_estudo TIMESTAMP NOT NULL,
			data_revisao TIMESTAMP NOT NULL,
			status TEXT NOT NULL DEFAULT 'pendente',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_revisoes_user ON revisoes(user_id)`,
		`CREATE TABLE IF NOT EXISTS questoes (
			id TEXT PRIMARY KEY,
			estudo_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			enunciado TEXT NOT NULL,
			comentario TEXT NOT NULL DEFAULT '',
			acertou INTEGER,
			comentarios TEXT NOT NULL DEFAULT '',
			resultados TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questoes_user ON questoes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_questoes_estudo ON questoes(estudo_id)`,
		`CREATE TABLE IF NOT EXISTS usuarios (
			user_id TEXT PRIMARY KEY,
			concurso TEXT NOT NULL DEFAULT '',
			cargo TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			meu_apelido TEXT NOT NULL DEFAULT '',
			parceiro_email TEXT NOT NULL DEFAULT '',
			apelido_parceiro TEXT NOT NULL DEFAULT '',
			artificial INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_usuarios_email ON usuarios(email)`,
		`CREATE TABLE IF NOT EXISTS parcerias (
			id TEXT PRIMARY KEY,
			solicitante_id TEXT NOT NULL,
			solicitante_email TEXT NOT NULL,
			parceiro_id TEXT NOT NULL,
			parceiro_email TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pendente',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_parcerias_solicitante ON parcerias(solicitante_id)`,
		`CREATE INDEX IF NOT EXISTS idx_parcerias_parceiro ON parcerias(parceiro_id)`,
		`CREATE TABLE IF NOT EXISTS contas (
			user_id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			senha_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
