package notify

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/cadernoestudos/pkg/models"
)

// Telegram envia os lembretes de revisão para um chat configurado.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token, chatID string) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid telegram chat id %q: %v", chatID, err)
	}
	return &Telegram{bot: bot, chatID: id}, nil
}

func (t *Telegram) EnviarLembrete(usuario models.ConfiguracaoUsuario, pendentes, atrasadas int) error {
	nome := usuario.MeuApelido
	if nome == "" {
		nome = usuario.Email
	}

	texto := fmt.Sprintf("📚 %s tem %d revisão(ões) para hoje", nome, pendentes)
	if atrasadas > 0 {
		texto += fmt.Sprintf(", %d já atrasada(s)", atrasadas)
	}

	msg := tgbotapi.NewMessage(t.chatID, texto)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %v", err)
	}
	return nil
}
