package security

import (
	"sync"
	"time"
)

// RateLimiter limita tentativas por chave em uma janela deslizante. Estado
// em memória, por processo: zera em reinício e não oferece garantia entre
// múltiplas instâncias. O relógio é injetado para permitir testes
// determinísticos.
type RateLimiter struct {
	mu            sync.Mutex
	tentativas    map[string]*registroTentativas
	maxTentativas int
	janela        time.Duration
	agora         func() time.Time
}

type registroTentativas struct {
	contagem int
	ultima   time.Time
}

// NewRateLimiter cria um limitador. agora pode ser nil para usar time.Now.
func NewRateLimiter(maxTentativas int, janela time.Duration, agora func() time.Time) *RateLimiter {
	if agora == nil {
		agora = time.Now
	}
	return &RateLimiter{
		tentativas:    make(map[string]*registroTentativas),
		maxTentativas: maxTentativas,
		janela:        janela,
		agora:         agora,
	}
}

// Permitir registra uma tentativa e informa se ela está dentro do limite.
func (rl *RateLimiter) Permitir(chave string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	agora := rl.agora()
	registro, existe := rl.tentativas[chave]

	if !existe || agora.Sub(registro.ultima) > rl.janela {
		rl.tentativas[chave] = &registroTentativas{contagem: 1, ultima: agora}
		return true
	}

	if registro.contagem >= rl.maxTentativas {
		return false
	}

	registro.contagem++
	registro.ultima = agora
	return true
}

// TentativasRestantes informa quantas tentativas ainda cabem na janela.
func (rl *RateLimiter) TentativasRestantes(chave string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	registro, existe := rl.tentativas[chave]
	if !existe {
		return rl.maxTentativas
	}
	restantes := rl.maxTentativas - registro.contagem
	if restantes < 0 {
		return 0
	}
	return restantes
}

// Reiniciar esquece as tentativas de uma chave (por exemplo, após login
// bem-sucedido).
func (rl *RateLimiter) Reiniciar(chave string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.tentativas, chave)
}
