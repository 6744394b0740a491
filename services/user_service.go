package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"hotel-booking/models"
	"hotel-booking/repository"
)

const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72 // bcrypt input limit
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserService registers users and checks credentials. It is the
// authentication collaborator; the booking core only ever sees an Actor.
type UserService struct {
	store *repository.Store
	cost  int
}

// NewUserService hashes with bcrypt at cost; 0 means bcrypt.DefaultCost.
func NewUserService(store *repository.Store, cost int) *UserService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{store: store, cost: cost}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	switch {
	case len(in.Username) < 3 || len(in.Username) > 64:
		return models.User{}, fmt.Errorf("%w: username must be 3-64 characters", models.ErrInvalidInput)
	case !emailRegex.MatchString(in.Email):
		return models.User{}, fmt.Errorf("%w: invalid email address", models.ErrInvalidInput)
	case len(in.Password) < MinPasswordLength:
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidInput, MinPasswordLength)
	case len(in.Password) > MaxPasswordBytes:
		return models.User{}, fmt.Errorf("%w: password must be at most %d bytes", models.ErrInvalidInput, MaxPasswordBytes)
	}

	usernameTaken, emailTaken, err := s.store.UserExists(ctx, in.Username, in.Email)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, fmt.Errorf("%w: username %q is already taken", models.ErrConflict, in.Username)
	}
	if emailTaken {
		return models.User{}, fmt.Errorf("%w: email is already registered", models.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
	}
	if err := s.store.CreateUser(ctx, &u); err != nil {
		return models.User{}, err
	}
	log.WithFields(log.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	return u, nil
}

// Authenticate returns the user for login (username or email) if the password
// matches. Unknown login and wrong password fail the same way.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (models.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password required", models.ErrInvalidInput)
	}
	u, err := s.store.FindUserByLogin(ctx, login)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return models.User{}, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (models.User, error) {
	return s.store.GetUser(ctx, id)
}
