package domain

import (
	"regexp"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

const MaxUsernameLen = 50

// Usernames are letters, digits and underscore only. No spaces.
var usernamePattern = regexp.MustCompile(`^\w+$`)

// Distinct validation kinds so callers can tell a too-long username from one
// with forbidden characters.
var (
	ErrUsernameTooLong    = &internal_errors.ValidationError{Message: "username exceeds 50 character limit"}
	ErrUsernameRestricted = &internal_errors.ValidationError{Message: "username contains restricted character"}
)

func validateUsername(username string) error {
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameRestricted
	}
	return nil
}

// RegisterUser is the registration payload. Password is replaced with its
// hash by the user service before it reaches storage.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func (p RegisterUser) Validate() error {
	if p.Username == "" || p.Password == "" || p.Fullname == "" {
		return &internal_errors.ValidationError{Message: "username, password and fullname are required"}
	}
	return validateUsername(p.Username)
}

type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func NewRegisteredUser(id, username, fullname string) (RegisteredUser, error) {
	if id == "" || username == "" || fullname == "" {
		return RegisteredUser{}, &internal_errors.ValidationError{Message: "registered user row is incomplete"}
	}
	return RegisteredUser{Id: id, Username: username, Fullname: fullname}, nil
}

// UserCredentials is the login payload.
type UserCredentials struct {
	Username string
	Password string
}

func (p UserCredentials) Validate() error {
	if p.Username == "" || p.Password == "" {
		return &internal_errors.ValidationError{Message: "username and password are required"}
	}
	return validateUsername(p.Username)
}

// CredentialUser is the stored credential fetched by username: the user id
// plus the opaque password hash.
type CredentialUser struct {
	Id       string
	Password string
}

func NewCredentialUser(id, password string) (CredentialUser, error) {
	if id == "" || password == "" {
		return CredentialUser{}, &internal_errors.ValidationError{Message: "credential row is incomplete"}
	}
	return CredentialUser{Id: id, Password: password}, nil
}
