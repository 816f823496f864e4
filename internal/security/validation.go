package security

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// Limites de validação de entrada, espelhando os campos armazenados.
const (
	EmailTamanhoMax = 254

	MateriaTamanhoMin = 2
	MateriaTamanhoMax = 100

	AssuntoTamanhoMin = 5
	AssuntoTamanhoMax = 1000

	EnunciadoTamanhoMin = 10
	EnunciadoTamanhoMax = 2000

	ComentarioTamanhoMax = 500
)

// Limites de tentativas de autenticação.
const (
	LoginTentativasMax  = 5
	SignupTentativasMax = 3
	JanelaTentativas    = 15 * time.Minute
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidarEmail verifica formato e tamanho máximo.
func ValidarEmail(email string) bool {
	return len(email) <= EmailTamanhoMax && emailRegex.MatchString(email)
}

// TamanhoEntre verifica o comprimento em runas de um campo de texto.
func TamanhoEntre(texto string, min, max int) bool {
	n := utf8.RuneCountInString(texto)
	return n >= min && n <= max
}
