package telegram

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/flouscash/platform/internal/domain/entity"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
)

// notSpecified substitutes for blank profile fields in alert messages
const notSpecified = "غير محدد"

// Config holds the operations bot settings
type Config struct {
	BotToken string
	ChatID   int64
}

// Notifier posts operations alerts to a Telegram chat. The bot client is
// initialized lazily because its constructor performs a network call; a
// misconfigured token degrades alerts without blocking startup.
type Notifier struct {
	cfg          Config
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	initOnce sync.Once
	bot      *tgbotapi.BotAPI
	initErr  error
}

// NewNotifier creates a new Telegram notifier
func NewNotifier(cfg Config, timeProvider coreport.TimeProvider, logger coreport.Logger) *Notifier {
	return &Notifier{
		cfg:          cfg,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// client returns the lazily initialized bot API
func (n *Notifier) client() (*tgbotapi.BotAPI, error) {
	n.initOnce.Do(func() {
		bot, err := tgbotapi.NewBotAPI(n.cfg.BotToken)
		if err != nil {
			n.initErr = fmt.Errorf("initializing telegram bot: %w", err)
			return
		}
		n.bot = bot
		n.logger.Info("Telegram bot connected", map[string]any{
			"bot_username": bot.Self.UserName,
		})
	})
	return n.bot, n.initErr
}

// SendServiceAlert announces a new financial-product application
func (n *Notifier) SendServiceAlert(ctx context.Context, alert notifier.ServiceAlert) error {
	message := fmt.Sprintf(`🎯 طلب جديد على منصة فلوس كاش

📛 الاسم: %s
📧 الإيميل: %s
📱 الموبايل: %s
🆔 الرقم القومي: %s
💼 الوظيفة: %s
🏠 العنوان: %s
🕒 الوقت: %s
📄 الخدمة: %s
💸 المبلغ: %s جنيه`,
		orNotSpecified(alert.FullName),
		orNotSpecified(alert.Email),
		orNotSpecified(alert.Phone),
		orNotSpecified(alert.NationalID),
		orNotSpecified(alert.Job),
		orNotSpecified(alert.Address),
		alert.Timestamp,
		alert.ServiceType,
		alert.Amount,
	)

	return n.send(ctx, message)
}

// SendRegistrationAlert announces a first-time signup
func (n *Notifier) SendRegistrationAlert(ctx context.Context, user *entity.User) error {
	message := fmt.Sprintf(`🆕 تسجيل جديد على منصة فلوس كاش

📛 الاسم: %s
📧 الإيميل: %s
📱 الموبايل: %s
🆔 الرقم القومي: %s
💼 الوظيفة: %s
🏠 العنوان: %s
🕒 الوقت: %s`,
		orNotSpecified(user.DisplayName()),
		orNotSpecified(user.Email),
		orNotSpecified(user.Phone),
		orNotSpecified(user.NationalID),
		orNotSpecified(user.Job),
		orNotSpecified(user.Address),
		n.cairoTimestamp(),
	)

	return n.send(ctx, message)
}

// send posts a message to the operations chat
func (n *Notifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bot, err := n.client()
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.cfg.ChatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	done := make(chan error, 1)
	go func() {
		_, sendErr := bot.Send(msg)
		done <- sendErr
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("sending telegram message: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sending telegram message: %w", ctx.Err())
	}
}

// cairoTimestamp formats the current time the way the operations team reads
// it. Falls back to UTC when the zone database is unavailable.
func (n *Notifier) cairoTimestamp() string {
	now := n.timeProvider.Now()
	if loc, err := time.LoadLocation("Africa/Cairo"); err == nil {
		now = now.In(loc)
	}
	return now.Format("02/01/2006, 15:04:05")
}

func orNotSpecified(v string) string {
	if v == "" {
		return notSpecified
	}
	return v
}
