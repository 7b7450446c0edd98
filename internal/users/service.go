package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("name, email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service implements signup and login on top of a Repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Signup registers a new account and returns its public projection.
func (s *Service) Signup(ctx context.Context, name, email, password string) (PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return PublicUser{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return PublicUser{}, err
	}
	return user.Public(), nil
}

// Login verifies credentials. Unknown emails and wrong passwords both map to
// ErrInvalidCredentials so responses don't leak which one failed.
func (s *Service) Login(ctx context.Context, email, password string) (PublicUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return PublicUser{}, ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return PublicUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return PublicUser{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return PublicUser{}, ErrInvalidCredentials
	}
	return user.Public(), nil
}
