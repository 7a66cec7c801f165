// Package auth implements the two-step sign-in: credentials first, then a
// six-digit second factor. Passing both steps sets the session's
// authenticated flag. Failures are never fatal; the flow stays in its step
// and reports a message. There is no lockout and no attempt counting.
package auth

import (
	"context"
	"fmt"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/session"
)

type State int

const (
	AwaitingCredentials State = iota
	AwaitingSecondFactor
)

func (s State) String() string {
	switch s {
	case AwaitingCredentials:
		return "credentials"
	case AwaitingSecondFactor:
		return "second_factor"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Flow is the sign-in state machine of one session. It is not safe for
// concurrent use; Registry serializes access.
type Flow struct {
	ref     Reference
	session *session.Session

	state    State
	email    string
	password string
	code     string
	err      error
}

func NewFlow(ref Reference, sess *session.Session) *Flow {
	return &Flow{ref: ref, session: sess, state: AwaitingCredentials}
}

func (f *Flow) State() State { return f.state }

// Err is the validation error currently shown, or nil.
func (f *Flow) Err() error { return f.err }

// Email is the last submitted email; Back keeps it.
func (f *Flow) Email() string { return f.email }

func (f *Flow) Session() *session.Session { return f.session }

// SubmitCredentials checks email and password with exact, case-sensitive
// comparison. On success the flow moves to AwaitingSecondFactor.
func (f *Flow) SubmitCredentials(email, password string) error {
	if f.state != AwaitingCredentials {
		return ErrWrongStep
	}

	f.email, f.password = email, password
	f.err = nil

	if !f.ref.matchesCredentials(email, password) {
		f.err = &ValidationError{Err: ErrInvalidCredentials, Message: MsgInvalidCredentials}
		return f.err
	}

	f.state = AwaitingSecondFactor
	return nil
}

// SubmitCode checks the second factor. The raw input is sanitized first.
// On success the session is marked authenticated; the caller hands off to
// the authenticated area. A storage failure is returned as is and leaves
// the flow in AwaitingSecondFactor.
func (f *Flow) SubmitCode(ctx context.Context, raw string) error {
	const op = "auth.Flow.SubmitCode"

	if f.state != AwaitingSecondFactor {
		return ErrWrongStep
	}

	f.code = SanitizeCode(raw)
	f.err = nil

	if f.code != f.ref.Code {
		f.err = &ValidationError{Err: ErrInvalidCode, Message: MsgInvalidCode}
		return f.err
	}

	if err := f.session.SetAuthenticated(ctx, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Back returns to the credentials step, clearing the error and the code.
// The entered email and password are kept.
func (f *Flow) Back() {
	f.state = AwaitingCredentials
	f.err = nil
	f.code = ""
}
