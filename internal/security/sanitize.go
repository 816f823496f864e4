package security

import (
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var politicaEstrita = bluemonday.StrictPolicy()

// Sanitizar remove qualquer marcação HTML da entrada e apara espaços.
func Sanitizar(entrada string) string {
	return strings.TrimSpace(politicaEstrita.Sanitize(entrada))
}

// SanitizarEValidar sanitiza e rejeita entradas que ficaram vazias
// (ou eram só marcação).
func SanitizarEValidar(entrada string) (string, error) {
	limpa := Sanitizar(entrada)
	if limpa == "" {
		return "", errors.New("entrada vazia ou insegura")
	}
	return limpa, nil
}
