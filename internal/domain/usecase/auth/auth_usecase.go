package auth

import (
	"context"
	"time"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
	"github.com/flouscash/platform/internal/domain/port/persistence"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	userusecase "github.com/flouscash/platform/internal/domain/usecase/user"
)

// AuthUseCase upserts users from verified identity claims and manages the
// session rows backing the session cookie. Credential verification itself
// lives with the external identity provider.
type AuthUseCase struct {
	users        *userusecase.UserUseCase
	sessionRepo  persistence.SessionRepository
	dispatcher   notifier.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	sessionTTL   time.Duration
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	users *userusecase.UserUseCase,
	sessionRepo persistence.SessionRepository,
	dispatcher notifier.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	sessionTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		users:        users,
		sessionRepo:  sessionRepo,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
		sessionTTL:   sessionTTL,
	}
}

// Login upserts the user and mints a session. First-time signups fire a
// registration alert and a welcome email, both best-effort.
func (u *AuthUseCase) Login(ctx context.Context, claims usecase.IdentityClaims) (*entity.User, *entity.Session, error) {
	user, created, err := u.users.Upsert(ctx, claims)
	if err != nil {
		return nil, nil, err
	}

	session, err := entity.NewSession(user.ID, u.sessionTTL, u.timeProvider)
	if err != nil {
		return nil, nil, err
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id":    user.ID,
		"first_time": created,
	})

	if created {
		u.dispatcher.RegistrationAlert(user)
		u.dispatcher.WelcomeEmail(user)
	}

	return user, session, nil
}

// Authenticate resolves a session cookie value to its user. Expired sessions
// are deleted opportunistically.
func (u *AuthUseCase) Authenticate(ctx context.Context, sid string) (*entity.User, error) {
	if sid == "" {
		return nil, errs.ErrUnauthorized
	}

	session, err := u.sessionRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	if session.Expired(u.timeProvider.Now()) {
		if delErr := u.sessionRepo.Delete(ctx, sid); delErr != nil {
			u.logger.Warn("Failed to delete expired session", map[string]any{
				"sid":   sid,
				"error": delErr.Error(),
			})
		}
		return nil, errs.ErrSessionExpired
	}

	return u.users.GetUser(ctx, session.UserID)
}

// Logout deletes the session. Unknown sessions are not an error.
func (u *AuthUseCase) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	err := u.sessionRepo.Delete(ctx, sid)
	if err != nil && !errs.IsNotFoundError(err) {
		return err
	}
	return nil
}

// PurgeExpiredSessions removes sessions past their expiry. Called at startup.
func (u *AuthUseCase) PurgeExpiredSessions(ctx context.Context) error {
	removed, err := u.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		u.logger.Info("Expired sessions purged", map[string]any{
			"count": removed,
		})
	}
	return nil
}
