package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
)

// TelegramNotifier pings the operator channel about payment outcomes.
// Customer e-mail is handled elsewhere; this is operational signal only.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram not configured, operator notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking paid*\n\nBooking: %s\nCustomer: %s (%s)\nParticipants: %d\nTotal: %d.%02d %s",
		b.ID, b.Customer.FullName, b.Customer.Email, b.NumberOfParticipants,
		b.TotalAmountCents/100, b.TotalAmountCents%100, b.Currency,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled (payment session expired)*\n\nBooking: %s\nCustomer: %s (%s)",
		b.ID, b.Customer.FullName, b.Customer.Email,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
