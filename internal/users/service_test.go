package users

import (
	"context"
	"errors"
	"testing"
)

func TestSignupAndLogin(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	created, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if created.ID == "" || created.Email != "ada@example.com" || created.Name != "Ada" {
		t.Fatalf("unexpected user %+v", created)
	}

	logged, err := svc.Login(context.Background(), "ADA@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("login returned different user: %s vs %s", logged.ID, created.ID)
	}
}

func TestSignupValidatesInput(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	for _, tc := range []struct{ name, email, password string }{
		{"", "a@b.c", "pw"},
		{"Ada", "", "pw"},
		{"Ada", "a@b.c", ""},
	} {
		if _, err := svc.Signup(context.Background(), tc.name, tc.email, tc.password); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", tc, err)
		}
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Signup(context.Background(), "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "Eve", "Ada@Example.com", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	svc.Signup(context.Background(), "Ada", "ada@example.com", "s3cret")

	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "pw")
	_, wrongErr := svc.Login(context.Background(), "ada@example.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongErr)
	}
}
