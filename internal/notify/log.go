package notify

import (
	"github.com/example/cadernoestudos/internal/logger"
	"github.com/example/cadernoestudos/pkg/models"
)

// Log é o notificador de reserva quando nenhum canal externo está
// configurado: registra o lembrete no log da aplicação.
type Log struct{}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) EnviarLembrete(usuario models.ConfiguracaoUsuario, pendentes, atrasadas int) error {
	logger.Info("lembrete: usuário %s tem %d revisão(ões) para hoje (%d atrasadas)", usuario.UserID, pendentes, atrasadas)
	return nil
}
