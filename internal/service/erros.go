package service

import (
	"errors"
	"fmt"

	"github.com/example/cadernoestudos/internal/database"
)

// Erros de domínio expostos às camadas de cima. As mensagens são as exibidas
// ao usuário; nenhuma falha dispara retry automático (spec do produto: a ação
// é terminal e o usuário reinvoca).
var (
	ErrValidacao           = errors.New("dados inválidos")
	ErrNaoEncontrado       = errors.New("registro não encontrado")
	ErrPermissaoNegada     = errors.New("você não tem permissão para realizar esta operação")
	ErrNaoAutenticado      = errors.New("sessão expirada, faça login novamente")
	ErrServicoIndisponivel = errors.New("serviço temporariamente indisponível, tente novamente")
)

// traduzir converte os sentinelas da camada de dados nos erros de domínio,
// preservando o contexto da operação.
func traduzir(operacao string, err error) error {
	switch {
	case errors.Is(err, database.ErrNaoEncontrado):
		return fmt.Errorf("%s: %w", operacao, ErrNaoEncontrado)
	case errors.Is(err, database.ErrPermissaoNegada):
		return fmt.Errorf("%s: %w", operacao, ErrPermissaoNegada)
	case errors.Is(err, database.ErrNaoAutenticado):
		return fmt.Errorf("%s: %w", operacao, ErrNaoAutenticado)
	case errors.Is(err, database.ErrIndisponivel):
		return fmt.Errorf("%s: %w", operacao, ErrServicoIndisponivel)
	}
	return fmt.Errorf("%s: %v", operacao, err)
}

func erroValidacao(formato string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidacao, fmt.Sprintf(formato, args...))
}
