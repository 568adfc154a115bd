package notifier

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// Attachment is a binary file carried by an email
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// EmailMessage is a transactional email with an HTML body
type EmailMessage struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// EmailSender delivers a single email. Implementations must respect the
// context deadline; there is no retry or delivery tracking.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// ServiceAlert is the operations notification raised when a user submits a
// financial-product application.
type ServiceAlert struct {
	FullName    string
	Email       string
	Phone       string
	NationalID  string
	Job         string
	Address     string
	ServiceType string
	Amount      string
	Timestamp   string
}

// TelegramNotifier posts formatted alerts to the operations chat
type TelegramNotifier interface {
	SendServiceAlert(ctx context.Context, alert ServiceAlert) error
	SendRegistrationAlert(ctx context.Context, user *entity.User) error
}

// Dispatcher fans side-effect notifications out after successful writes.
// Every method is best-effort and detached: it returns immediately, runs the
// delivery on its own goroutine under a bounded timeout, and only logs the
// outcome. Failures never reach API callers.
type Dispatcher interface {
	// ServiceAlert announces a new funding request, savings goal or
	// investment offer to the operations chat.
	ServiceAlert(user *entity.User, serviceType, amount string)
	// RegistrationAlert announces a first-time signup to the operations chat
	RegistrationAlert(user *entity.User)
	// WelcomeEmail greets a first-time user
	WelcomeEmail(user *entity.User)
	// SignedContractEmail delivers the rendered contract to its owner
	SignedContractEmail(user *entity.User, contract *entity.Contract, pdf []byte)
	// Wait blocks until all in-flight dispatches finish. Used by graceful
	// shutdown and tests.
	Wait()
}
