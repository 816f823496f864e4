package service

import (
	"testing"

	"github.com/example/cadernoestudos/internal/database"
)

// novoRepos abre um armazenamento sqlite descartável para os testes.
func novoRepos(t *testing.T) *database.Repositorios {
	t.Helper()
	db, err := database.Connect("sqlite", "", t.TempDir())
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return database.NewSQLRepositorios(db)
}
