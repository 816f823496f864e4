package security

import "testing"

func TestValidarSenhaForte(t *testing.T) {
	resultado := ValidarSenha("Estudo#2024ok")
	if !resultado.Valida {
		t.Fatalf("senha forte rejeitada: %v", resultado.Erros)
	}
	if resultado.Pontuacao != 4 {
		t.Errorf("esperava pontuação 4, obteve %d", resultado.Pontuacao)
	}
}

func TestValidarSenhaRegras(t *testing.T) {
	casos := []struct {
		nome  string
		senha string
	}{
		{"curta", "Ab1!x"},
		{"curta em runes", "Áb#1Aaa"},
		{"sem maiúscula", "abcdef1!"},
		{"sem minúscula", "ABCDEF1!"},
		{"sem número", "Abcdefg!"},
		{"sem especial", "Abcdefg1"},
	}

	for _, c := range casos {
		if resultado := ValidarSenha(c.senha); resultado.Valida {
			t.Errorf("%s: senha %q deveria ser inválida", c.nome, c.senha)
		}
	}
}

func TestValidarSenhaContaRunes(t *testing.T) {
	// 8 runas, mais de 8 bytes: o mínimo é contado em caracteres
	resultado := ValidarSenha("Ábcd#1aa")
	if !resultado.Valida {
		t.Errorf("senha de 8 runas rejeitada: %v", resultado.Erros)
	}
}

func TestValidarSenhaComum(t *testing.T) {
	// Cumpre todas as regras estruturais mas está na lista de bloqueio
	for _, senha := range []string{"password", "Password123", "QWERTY123"} {
		resultado := ValidarSenha(senha)
		if resultado.Valida {
			t.Errorf("senha comum %q não deveria passar", senha)
		}
	}
}

func TestValidarSenhaAcumulaErros(t *testing.T) {
	resultado := ValidarSenha("abc")
	if len(resultado.Erros) < 4 {
		t.Errorf("esperava múltiplos erros para senha fraca, obteve %v", resultado.Erros)
	}
	if resultado.Pontuacao >= 4 {
		t.Errorf("pontuação alta demais para senha fraca: %d", resultado.Pontuacao)
	}
}
