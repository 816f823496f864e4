package database

import (
	"database/sql"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Erros sentinela devolvidos pelos repositórios. A camada de serviço traduz
// cada um para a mensagem exibida ao usuário; nenhum deles dispara retry.
var (
	ErrNaoEncontrado   = errors.New("registro não encontrado")
	ErrPermissaoNegada = errors.New("permissão negada pelo backend")
	ErrNaoAutenticado  = errors.New("usuário não autenticado no backend")
	ErrIndisponivel    = errors.New("backend indisponível")
)

// traduzErroFirestore mapeia códigos gRPC do Firestore para os sentinelas.
func traduzErroFirestore(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNaoEncontrado
	case codes.PermissionDenied:
		return ErrPermissaoNegada
	case codes.Unauthenticated:
		return ErrNaoAutenticado
	case codes.Unavailable:
		return ErrIndisponivel
	}
	return err
}

// traduzErroSQL mapeia erros do driver local, preservando o contexto da
// operação nos não mapeados.
func traduzErroSQL(operacao string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNaoEncontrado
	}
	return fmt.Errorf("failed to %s: %v", operacao, err)
}
