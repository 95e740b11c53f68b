package workshops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ampliy/ampliy/internal/kv"
	"github.com/ampliy/ampliy/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultEmail    = "teste@teste.com"
	defaultPassword = "123"

	userEmailKey      = "workshopsUserEmail"
	registeredUserKey = "workshopsRegisteredUser"
	progressKey       = "workshopsLessonProgress"

	ProgressStarted   = 0
	ProgressCompleted = 100
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// RegisteredUser is the single account a visitor can create. Only the password hash is kept.
type RegisteredUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
	Cpf          string `json:"cpf"`
	Phone        string `json:"phone"`
}

func (u *RegisteredUser) SetPassword(pwd string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *RegisteredUser) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

type RegisterInput struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank"`
	Cpf      string `json:"cpf" validate:"notblank"`
	Phone    string `json:"phone" validate:"notblank"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service keeps each visitor's login, registration and lesson progress in a kv.Store,
// under keys scoped by the visitor's session id.
type Service struct {
	store    kv.Store
	hashCost int
}

type ServiceOption func(*Service)

func WithHashCost(cost int) ServiceOption {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func NewService(store kv.Store, opts ...ServiceOption) *Service {
	s := &Service{store: store, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) session(sessionId string) kv.Store {
	return kv.WithPrefix(s.store, sessionId)
}

// Login accepts the demo account or the visitor's registered account. The session is
// always signed in as the demo account email.
func (s *Service) Login(ctx context.Context, sessionId string, in LoginInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	password := strings.TrimSpace(in.Password)

	valid := email == DefaultEmail && password == defaultPassword
	if !valid {
		user, err := s.registeredUser(ctx, sessionId)
		if err != nil && !errors.Is(err, kv.ErrNotFound) {
			return "", err
		}
		valid = err == nil &&
			strings.ToLower(strings.TrimSpace(user.Email)) == email &&
			user.CheckPassword(password) == nil
	}
	if !valid {
		return "", ErrInvalidCredentials
	}

	if err := s.session(sessionId).Set(ctx, userEmailKey, DefaultEmail); err != nil {
		return "", fmt.Errorf("failed to store login: %w", err)
	}
	return DefaultEmail, nil
}

// Register replaces the visitor's account and signs the session in with it.
func (s *Service) Register(ctx context.Context, sessionId string, in RegisterInput) (RegisteredUser, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return RegisteredUser{}, err
	}

	user := RegisteredUser{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Cpf:   strings.TrimSpace(in.Cpf),
		Phone: strings.TrimSpace(in.Phone),
	}
	if err := user.SetPassword(strings.TrimSpace(in.Password), s.hashCost); err != nil {
		return RegisteredUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return RegisteredUser{}, fmt.Errorf("failed to encode registered user: %w", err)
	}
	store := s.session(sessionId)
	if err := store.Set(ctx, registeredUserKey, string(encoded)); err != nil {
		return RegisteredUser{}, fmt.Errorf("failed to store registered user: %w", err)
	}
	if err := store.Set(ctx, userEmailKey, user.Email); err != nil {
		return RegisteredUser{}, fmt.Errorf("failed to store login: %w", err)
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context, sessionId string) error {
	return s.session(sessionId).Remove(ctx, userEmailKey)
}

// CurrentEmail returns the signed-in email or ErrNotAuthenticated.
func (s *Service) CurrentEmail(ctx context.Context, sessionId string) (string, error) {
	email, err := s.session(sessionId).Get(ctx, userEmailKey)
	if errors.Is(err, kv.ErrNotFound) {
		return "", ErrNotAuthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to read login: %w", err)
	}
	return email, nil
}

func (s *Service) RegisteredUser(ctx context.Context, sessionId string) (RegisteredUser, bool, error) {
	user, err := s.registeredUser(ctx, sessionId)
	if errors.Is(err, kv.ErrNotFound) {
		return RegisteredUser{}, false, nil
	}
	if err != nil {
		return RegisteredUser{}, false, err
	}
	return user, true, nil
}

func (s *Service) registeredUser(ctx context.Context, sessionId string) (RegisteredUser, error) {
	raw, err := s.session(sessionId).Get(ctx, registeredUserKey)
	if err != nil {
		return RegisteredUser{}, err
	}
	var user RegisteredUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return RegisteredUser{}, fmt.Errorf("failed to decode registered user: %w", err)
	}
	return user, nil
}
