package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type UserService interface {
	Register(payload domain.RegisterUser) (domain.RegisteredUser, error)
	VerifyCredential(payload domain.UserCredentials) (string, error)
}

type User struct {
	users  UserStorage
	hasher PasswordHasher
}

// UserStorage is the user repository contract.
type UserStorage interface {
	// CheckUsernameAvailable fails with an InvariantError if taken.
	CheckUsernameAvailable(username string) error
	// SaveUser persists a user whose Password field already holds the hash.
	SaveUser(payload domain.RegisterUser) (domain.RegisteredUser, error)
	// UserCredential returns id + password hash by username; NotFound if
	// absent.
	UserCredential(username string) (domain.CredentialUser, error)
}

// PasswordHasher is the external hashing collaborator.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare fails with an AuthenticationError on mismatch.
	Compare(plain, hashed string) error
}

type UnimplementedUserStorage struct{}

func (UnimplementedUserStorage) CheckUsernameAvailable(string) error {
	return internal_errors.ErrNotImplemented
}
func (UnimplementedUserStorage) SaveUser(domain.RegisterUser) (domain.RegisteredUser, error) {
	return domain.RegisteredUser{}, internal_errors.ErrNotImplemented
}
func (UnimplementedUserStorage) UserCredential(string) (domain.CredentialUser, error) {
	return domain.CredentialUser{}, internal_errors.ErrNotImplemented
}

func NewUser(users UserStorage, hasher PasswordHasher) *User {
	return &User{users, hasher}
}

func (s *User) Register(payload domain.RegisterUser) (domain.RegisteredUser, error) {
	if err := payload.Validate(); err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := s.users.CheckUsernameAvailable(payload.Username); err != nil {
		return domain.RegisteredUser{}, err
	}
	hashed, err := s.hasher.Hash(payload.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	payload.Password = hashed
	return s.users.SaveUser(payload)
}

// VerifyCredential returns the user id on success.
func (s *User) VerifyCredential(payload domain.UserCredentials) (string, error) {
	if err := payload.Validate(); err != nil {
		return "", err
	}
	cred, err := s.users.UserCredential(payload.Username)
	if err != nil {
		return "", err
	}
	if err := s.hasher.Compare(payload.Password, cred.Password); err != nil {
		return "", err
	}
	return cred.Id, nil
}
