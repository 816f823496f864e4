package security

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// caracteres especiais aceitos na regra de força de senha
const caracteresEspeciais = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// ResultadoSenha é o resultado da validação de força de senha.
// Pontuacao vai de 0 (muito fraca) a 4 (muito forte).
type ResultadoSenha struct {
	Valida    bool     `json:"isValid"`
	Erros     []string `json:"errors"`
	Pontuacao int      `json:"score"`
}

// ValidarSenha aplica as regras de força: mínimo de 8 caracteres, ao menos
// uma maiúscula, uma minúscula, um número e um caractere especial, e a senha
// não pode estar na lista de senhas comuns.
func ValidarSenha(senha string) ResultadoSenha {
	var erros []string
	pontuacao := 0

	if utf8.RuneCountInString(senha) < 8 {
		erros = append(erros, "A senha deve ter pelo menos 8 caracteres")
	} else {
		pontuacao++
	}

	var temMaiuscula, temMinuscula, temNumero, temEspecial bool
	for _, r := range senha {
		switch {
		case unicode.IsUpper(r):
			temMaiuscula = true
		case unicode.IsLower(r):
			temMinuscula = true
		case unicode.IsDigit(r):
			temNumero = true
		case strings.ContainsRune(caracteresEspeciais, r):
			temEspecial = true
		}
	}

	if !temMaiuscula {
		erros = append(erros, "A senha deve conter pelo menos uma letra maiúscula")
	} else {
		pontuacao++
	}
	if !temMinuscula {
		erros = append(erros, "A senha deve conter pelo menos uma letra minúscula")
	} else {
		pontuacao++
	}
	if !temNumero {
		erros = append(erros, "A senha deve conter pelo menos um número")
	} else {
		pontuacao++
	}
	if !temEspecial {
		erros = append(erros, "A senha deve conter pelo menos um caractere especial")
	} else {
		pontuacao++
	}

	if senhaComum(senha) {
		erros = append(erros, "A senha não pode ser uma senha comum")
	}

	if pontuacao > 4 {
		pontuacao = 4
	}

	return ResultadoSenha{
		Valida:    len(erros) == 0,
		Erros:     erros,
		Pontuacao: pontuacao,
	}
}

func senhaComum(senha string) bool {
	minuscula := strings.ToLower(senha)
	for _, comum := range senhasComuns {
		if minuscula == comum {
			return true
		}
	}
	return false
}

// Lista de senhas comuns bloqueadas no cadastro.
var senhasComuns = []string{
	"password", "123456", "123456789", "qwerty", "abc123",
	"password123", "admin", "letmein", "welcome", "monkey",
	"senha", "12345678", "1234", "12345", "1234567", "1234567890",
	"password1", "admin123", "root", "toor",
	"test", "guest", "user", "demo", "sample", "example",
	"123123", "111111", "000000", "123321", "654321",
	"qwerty123", "qwertyuiop", "asdfghjkl", "zxcvbnm",
	"iloveyou", "princess", "rockyou", "master", "hello",
	"freedom", "whatever", "trustno1", "dragon", "baseball",
	"superman", "batman", "shadow", "michael", "football",
	"mustang", "access", "flower", "hello123", "letmein123",
	"welcome123", "monkey123", "dragon123", "master123",
}
