// Package signin exposes the two-step sign-in over session tokens.
//
// A token only names a browser session. Whether that session may use the
// dashboard is decided by its authenticated flag, which the second step sets
// and Logout removes.
package signin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/auth"
)

type Status struct {
	SessionID     string `json:"-"`
	State         string `json:"state"`
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	Error         string `json:"error,omitempty"`
}

type Service struct {
	registry *auth.Registry
	tokens   *auth.Tokens
	log      *slog.Logger
}

func New(registry *auth.Registry, tokens *auth.Tokens, log *slog.Logger) *Service {
	return &Service{
		registry: registry,
		tokens:   tokens,
		log:      log,
	}
}

// Start opens a new session and returns its token.
func (s *Service) Start() (sessionID, token string, exp time.Time, err error) {
	const op = "service.signin.Start"

	sessionID, token, exp, err = s.tokens.Issue()
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return sessionID, token, exp, nil
}

// Resolve maps a token to its session id.
func (s *Service) Resolve(token string) (string, error) {
	return s.tokens.Parse(token)
}

func (s *Service) status(ctx context.Context, sessionID string, f *auth.Flow) (Status, error) {
	ok, err := f.Session().IsAuthenticated(ctx)
	if err != nil {
		return Status{}, err
	}

	st := Status{
		SessionID:     sessionID,
		State:         f.State().String(),
		Authenticated: ok,
		Email:         f.Email(),
	}
	if f.Err() != nil {
		st.Error = f.Err().Error()
	}

	return st, nil
}

// SubmitCredentials runs the first step. A mismatch returns the status
// together with an *auth.ValidationError.
func (s *Service) SubmitCredentials(ctx context.Context, sessionID, email, password string) (Status, error) {
	const op = "service.signin.SubmitCredentials"

	var st Status
	err := s.registry.With(sessionID, func(f *auth.Flow) error {
		stepErr := f.SubmitCredentials(email, password)

		var err error
		if st, err = s.status(ctx, sessionID, f); err != nil {
			return err
		}
		return stepErr
	})
	if err != nil {
		s.log.Info("credentials rejected", slog.String("session", sessionID), slog.Any("err", err))
		return st, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("credentials accepted", slog.String("session", sessionID))
	return st, nil
}

// SubmitCode runs the second step and sets the authenticated flag on a match.
func (s *Service) SubmitCode(ctx context.Context, sessionID, code string) (Status, error) {
	const op = "service.signin.SubmitCode"

	var st Status
	err := s.registry.With(sessionID, func(f *auth.Flow) error {
		stepErr := f.SubmitCode(ctx, code)

		var err error
		if st, err = s.status(ctx, sessionID, f); err != nil {
			return err
		}
		return stepErr
	})
	if err != nil {
		s.log.Info("second factor rejected", slog.String("session", sessionID), slog.Any("err", err))
		return st, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("session authenticated", slog.String("session", sessionID))
	return st, nil
}

func (s *Service) Back(ctx context.Context, sessionID string) (Status, error) {
	const op = "service.signin.Back"

	var st Status
	err := s.registry.With(sessionID, func(f *auth.Flow) error {
		f.Back()

		var err error
		st, err = s.status(ctx, sessionID, f)
		return err
	})
	if err != nil {
		return Status{}, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}

func (s *Service) State(ctx context.Context, sessionID string) (Status, error) {
	const op = "service.signin.State"

	var st Status
	err := s.registry.With(sessionID, func(f *auth.Flow) error {
		var err error
		st, err = s.status(ctx, sessionID, f)
		return err
	})
	if err != nil {
		return Status{}, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}

// Authenticated reports whether the session's flag is set.
func (s *Service) Authenticated(ctx context.Context, sessionID string) (bool, error) {
	const op = "service.signin.Authenticated"

	ok, err := s.registry.Session(sessionID).IsAuthenticated(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// Logout removes the flag and forgets the flow.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	const op = "service.signin.Logout"

	if err := s.registry.Session(sessionID).SetAuthenticated(ctx, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.registry.Forget(sessionID)
	s.log.Info("session logged out", slog.String("session", sessionID))

	return nil
}
