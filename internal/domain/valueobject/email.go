package valueobject

import (
	"regexp"
	"strings"

	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable, validated email address. The zero value is not a
// valid Email; obtain one through NewEmail.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it. Blank or malformed input yields an
// InvalidEmail error.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" || !emailPattern.MatchString(raw) {
		return Email{}, apperror.InvalidEmail()
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether e was never constructed.
func (e Email) IsZero() bool { return e.value == "" }

// Equals compares by value. Comparing against an unconstructed Email is
// always false.
func (e Email) Equals(other Email) bool {
	if e.IsZero() || other.IsZero() {
		return false
	}
	return e.value == other.value
}
