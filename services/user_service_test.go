package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/testutil"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repository.New(testutil.NewDB(t)), bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Username: "asha",
		Email:    "Asha@Example.com ",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 || u.Email != "asha@example.com" || u.IsAdmin {
		t.Errorf("unexpected user %+v", u)
	}
	if u.PasswordHash == "s3cret-pass" {
		t.Error("password stored in clear text")
	}

	for _, login := range []string{"asha", "ASHA@example.com"} {
		got, err := svc.Authenticate(ctx, login, "s3cret-pass")
		if err != nil || got.ID != u.ID {
			t.Errorf("Authenticate(%q) = %v, %v", login, got.ID, err)
		}
	}
	if _, err := svc.Authenticate(ctx, "asha", "wrong-pass"); !errors.Is(err, models.ErrUnauthenticated) {
		t.Errorf("wrong password: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "s3cret-pass"); !errors.Is(err, models.ErrUnauthenticated) {
		t.Errorf("unknown user: expected ErrUnauthenticated, got %v", err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "asha", Email: "asha@example.com", Password: "password123"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"same username", RegisterInput{Username: "asha", Email: "other@example.com", Password: "password123"}},
		{"same email", RegisterInput{Username: "ravi", Email: "ASHA@example.com", Password: "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.in); !errors.Is(err, models.ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"short username", RegisterInput{Username: "ab", Email: "ab@example.com", Password: "password123"}},
		{"bad email", RegisterInput{Username: "abc", Email: "not-an-email", Password: "password123"}},
		{"short password", RegisterInput{Username: "abc", Email: "abc@example.com", Password: "short"}},
		{"password over bcrypt limit", RegisterInput{Username: "abc", Email: "abc@example.com", Password: strings.Repeat("p", MaxPasswordBytes+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.in); !errors.Is(err, models.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
