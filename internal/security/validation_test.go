package security

import (
	"strings"
	"testing"
)

func TestValidarEmail(t *testing.T) {
	validos := []string{"ana@exemplo.com", "joao.silva@sub.dominio.com.br", "x@y.co"}
	for _, email := range validos {
		if !ValidarEmail(email) {
			t.Errorf("email válido rejeitado: %q", email)
		}
	}

	invalidos := []string{"", "sem-arroba", "a@b", "com espaço@exemplo.com", "a@@b.com"}
	for _, email := range invalidos {
		if ValidarEmail(email) {
			t.Errorf("email inválido aceito: %q", email)
		}
	}

	longo := strings.Repeat("a", 250) + "@exemplo.com"
	if ValidarEmail(longo) {
		t.Error("email acima do tamanho máximo aceito")
	}
}

func TestTamanhoEntre(t *testing.T) {
	if !TamanhoEntre("ab", 2, 100) {
		t.Error("limite inferior inclusivo falhou")
	}
	if TamanhoEntre("a", 2, 100) {
		t.Error("abaixo do mínimo deveria falhar")
	}
	// Conta runas, não bytes
	if !TamanhoEntre("çã", 2, 2) {
		t.Error("contagem de runas incorreta")
	}
}

func TestSanitizarRemoveMarcacao(t *testing.T) {
	got := Sanitizar("  <script>alert('x')</script>Direito Penal  ")
	if strings.Contains(got, "<script>") {
		t.Errorf("marcação não removida: %q", got)
	}
	if !strings.Contains(got, "Direito Penal") {
		t.Errorf("conteúdo legítimo perdido: %q", got)
	}

	if _, err := SanitizarEValidar("<b></b>"); err == nil {
		t.Error("entrada que vira vazia deveria ser rejeitada")
	}
	if limpa, err := SanitizarEValidar(" Constitucional "); err != nil || limpa != "Constitucional" {
		t.Errorf("sanitização de texto simples: %q, %v", limpa, err)
	}
}
