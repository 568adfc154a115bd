package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/flouscash/platform/internal/domain/entity"
	"github.com/flouscash/platform/internal/domain/port/notifier"
	coremocks "github.com/flouscash/platform/mocks/port/core"
	notifiermocks "github.com/flouscash/platform/mocks/port/notifier"
)

type dispatcherFixture struct {
	email      *notifiermocks.MockEmailSender
	telegram   *notifiermocks.MockTelegramNotifier
	logger     *coremocks.MockLogger
	dispatcher *Dispatcher
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	f := &dispatcherFixture{
		email:    notifiermocks.NewMockEmailSender(t),
		telegram: notifiermocks.NewMockTelegramNotifier(t),
		logger:   coremocks.NewMockLogger(t),
	}

	timeProv := coremocks.NewMockTimeProvider(t)
	timeProv.EXPECT().Now().Return(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)).Maybe()
	timeProv.EXPECT().Since(mock.Anything).Return(5 * time.Millisecond).Maybe()
	timeProv.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeout)
		}).Maybe()

	f.dispatcher = NewDispatcher(f.email, f.telegram, timeProv, f.logger, 5*time.Second)
	return f
}

func dispatchUser() *entity.User {
	return &entity.User{
		ID:       "user-1",
		Email:    "ahmed@example.com",
		FullName: "Ahmed Hassan",
		Phone:    "+201001234567",
	}
}

func TestDispatcherServiceAlert(t *testing.T) {
	t.Run("Delivers the snapshot to the operations chat", func(t *testing.T) {
		f := newDispatcherFixture(t)
		f.telegram.EXPECT().SendServiceAlert(mock.Anything, mock.MatchedBy(func(alert notifier.ServiceAlert) bool {
			return alert.FullName == "Ahmed Hassan" &&
				alert.ServiceType == "طلب تمويل" &&
				alert.Amount == "5000.00"
		})).Return(nil).Once()
		f.logger.EXPECT().Info("Notification dispatched", mock.Anything).Once()

		f.dispatcher.ServiceAlert(dispatchUser(), "طلب تمويل", "5000.00")
		f.dispatcher.Wait()
	})

	t.Run("Delivery failure is logged and swallowed", func(t *testing.T) {
		f := newDispatcherFixture(t)
		f.telegram.EXPECT().SendServiceAlert(mock.Anything, mock.Anything).
			Return(errors.New("telegram unreachable")).Once()
		f.logger.EXPECT().Error("Notification dispatch failed", mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["channel"] == "telegram" && fields["event"] == "service_alert"
		})).Once()

		f.dispatcher.ServiceAlert(dispatchUser(), "طلب تمويل", "5000.00")
		f.dispatcher.Wait()
	})
}

func TestDispatcherEmails(t *testing.T) {
	t.Run("Welcome email goes to the new user", func(t *testing.T) {
		f := newDispatcherFixture(t)
		f.email.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg notifier.EmailMessage) bool {
			return msg.To == "ahmed@example.com" &&
				msg.Subject == welcomeSubject &&
				len(msg.Attachments) == 0
		})).Return(nil).Once()
		f.logger.EXPECT().Info("Notification dispatched", mock.Anything).Once()

		f.dispatcher.WelcomeEmail(dispatchUser())
		f.dispatcher.Wait()
	})

	t.Run("Signed contract email attaches the document", func(t *testing.T) {
		f := newDispatcherFixture(t)
		pdf := []byte("%PDF-1.3 fake")
		f.email.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg notifier.EmailMessage) bool {
			return msg.To == "ahmed@example.com" &&
				len(msg.Attachments) == 1 &&
				msg.Attachments[0].Filename == "contract.pdf" &&
				msg.Attachments[0].ContentType == "application/pdf"
		})).Return(nil).Once()
		f.logger.EXPECT().Info("Notification dispatched", mock.Anything).Once()

		f.dispatcher.SignedContractEmail(dispatchUser(), &entity.Contract{ID: 9}, pdf)
		f.dispatcher.Wait()
	})
}

func TestDispatcherWait(t *testing.T) {
	f := newDispatcherFixture(t)

	done := make(chan struct{})
	f.telegram.EXPECT().SendRegistrationAlert(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.User) error {
			<-done
			return nil
		}).Once()
	f.logger.EXPECT().Info("Notification dispatched", mock.Anything).Once()

	f.dispatcher.RegistrationAlert(dispatchUser())

	waited := make(chan struct{})
	go func() {
		f.dispatcher.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while a dispatch was still in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(done)
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the dispatch finished")
	}
}
