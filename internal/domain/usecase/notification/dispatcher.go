package notification

import (
	"context"
	"sync"
	"time"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
)

// Dispatcher implements notifier.Dispatcher. Each dispatch runs detached on
// its own goroutine under a bounded timeout so a slow SMTP server or an
// unreachable Telegram API can never stall a request. Outcomes are logged
// and swallowed.
type Dispatcher struct {
	email        notifier.EmailSender
	telegram     notifier.TelegramNotifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	timeout      time.Duration
	wg           sync.WaitGroup
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(
	email notifier.EmailSender,
	telegram notifier.TelegramNotifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	timeout time.Duration,
) *Dispatcher {
	return &Dispatcher{
		email:        email,
		telegram:     telegram,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
	}
}

// dispatch runs fn detached with a bounded timeout and logs the outcome
func (d *Dispatcher) dispatch(channel, event string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := d.timeProvider.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		start := d.timeProvider.Now()
		if err := fn(ctx); err != nil {
			notifErr := &errs.NotificationError{Channel: channel, Event: event, Err: err}
			d.logger.Error("Notification dispatch failed", notifErr.LogFields())
			return
		}

		d.logger.Info("Notification dispatched", map[string]any{
			"channel":    channel,
			"event":      event,
			"latency_ms": d.timeProvider.Since(start).Milliseconds(),
		})
	}()
}

// ServiceAlert announces a new financial-product submission to the
// operations chat.
func (d *Dispatcher) ServiceAlert(user *entity.User, serviceType, amount string) {
	alert := notifier.ServiceAlert{
		FullName:    user.DisplayName(),
		Email:       user.Email,
		Phone:       user.Phone,
		NationalID:  user.NationalID,
		Job:         user.Job,
		Address:     user.Address,
		ServiceType: serviceType,
		Amount:      amount,
		Timestamp:   cairoTimestamp(d.timeProvider.Now()),
	}
	d.dispatch("telegram", "service_alert", func(ctx context.Context) error {
		return d.telegram.SendServiceAlert(ctx, alert)
	})
}

// RegistrationAlert announces a first-time signup to the operations chat
func (d *Dispatcher) RegistrationAlert(user *entity.User) {
	d.dispatch("telegram", "registration_alert", func(ctx context.Context) error {
		return d.telegram.SendRegistrationAlert(ctx, user)
	})
}

// WelcomeEmail greets a first-time user
func (d *Dispatcher) WelcomeEmail(user *entity.User) {
	msg := notifier.EmailMessage{
		To:      user.Email,
		Subject: welcomeSubject,
		HTML:    welcomeBody(user.DisplayName()),
	}
	d.dispatch("email", "welcome", func(ctx context.Context) error {
		return d.email.Send(ctx, msg)
	})
}

// SignedContractEmail delivers the rendered contract to its owner
func (d *Dispatcher) SignedContractEmail(user *entity.User, contract *entity.Contract, pdf []byte) {
	msg := notifier.EmailMessage{
		To:      user.Email,
		Subject: signedContractSubject,
		HTML:    signedContractBody(user.FirstName),
		Attachments: []notifier.Attachment{
			{
				Filename:    "contract.pdf",
				Content:     pdf,
				ContentType: "application/pdf",
			},
		},
	}
	d.dispatch("email", "signed_contract", func(ctx context.Context) error {
		return d.email.Send(ctx, msg)
	})
}

// Wait blocks until all in-flight dispatches finish
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// cairoTimestamp formats an instant in the operations team's timezone.
// Falls back to UTC when the tz database is unavailable.
func cairoTimestamp(t time.Time) string {
	loc, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("02/01/2006, 15:04:05")
}
