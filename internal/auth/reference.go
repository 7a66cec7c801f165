package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CodeLength is the number of digits of the second factor.
const CodeLength = 6

// Reference holds the fixed values submissions are checked against. Only a
// bcrypt hash of the password is kept.
type Reference struct {
	Email        string
	passwordHash []byte
	Code         string
}

func NewReference(email, password, code string, cost int) (Reference, error) {
	const op = "auth.NewReference"

	if len(code) != CodeLength || SanitizeCode(code) != code {
		return Reference{}, fmt.Errorf("%s: second factor must be %d digits", op, CodeLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Reference{}, fmt.Errorf("%s: %w", op, err)
	}

	return Reference{Email: email, passwordHash: hash, Code: code}, nil
}

func (r Reference) matchesCredentials(email, password string) bool {
	if email != r.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)) == nil
}

// SanitizeCode keeps the digits of raw and truncates them to CodeLength,
// the way the code field accepts input.
func SanitizeCode(raw string) string {
	out := make([]byte, 0, CodeLength)
	for i := 0; i < len(raw) && len(out) < CodeLength; i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}
