package entity

import (
	"strings"
	"time"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
)

// UserProps carries the attributes needed to build a User. CreatedAt and ID
// are optional: zero values are replaced by the current time and a freshly
// generated Identity.
type UserProps struct {
	ID        Identity
	Name      string
	Email     valueobject.Email
	Password  string
	CreatedAt time.Time
}

// User is the aggregate root for the user domain.
// Password holds a hash once the user has gone through CreateUser; it is
// never validated here.
type User struct {
	id        Identity
	name      string
	email     valueobject.Email
	password  string
	createdAt time.Time
}

// NewUser builds a User, rejecting a blank name.
func NewUser(props UserProps) (*User, error) {
	if strings.TrimSpace(props.Name) == "" {
		return nil, apperror.BadRequest("Name is required.")
	}
	id := props.ID
	if id.IsZero() {
		id = NewIdentity("")
	}
	createdAt := props.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &User{
		id:        id,
		name:      props.Name,
		email:     props.Email,
		password:  props.Password,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() Identity             { return u.id }
func (u *User) Name() string             { return u.name }
func (u *User) Email() valueobject.Email { return u.email }
func (u *User) Password() string         { return u.password }
func (u *User) CreatedAt() time.Time     { return u.createdAt }

// UpdateName replaces the name; a blank name leaves the user untouched.
func (u *User) UpdateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.BadRequest("Name cannot be empty.")
	}
	u.name = name
	return nil
}

// UpdateEmail replaces the email wholesale. A nil email is rejected and an
// email equal to the current one is a no-op.
func (u *User) UpdateEmail(email *valueobject.Email) error {
	if email == nil || email.IsZero() {
		return apperror.BadRequest("Email is required.")
	}
	if email.Equals(u.email) {
		return nil
	}
	u.email = *email
	return nil
}

// UpdatePasswordHash stores an already hashed password.
func (u *User) UpdatePasswordHash(hash string) {
	u.password = hash
}
