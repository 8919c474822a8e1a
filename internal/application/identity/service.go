package identity

import (
	"context"
	"sync"
	"time"

	"github.com/aromatta/backend/internal/domain/identity"
	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"go.uber.org/zap"
)

// Storage keys for accounts and the active session
const (
	UsersStorageKey   = "aromatta_users"
	SessionStorageKey = "aromatta_user"
)

// TokenIssuer issues signed session tokens
type TokenIssuer interface {
	GenerateToken(userID, email, role string) (string, error)
}

// Service handles registration, login and profile updates. Lookups are
// artificially delayed to mirror the latency of a real auth provider;
// the delay is configurable and zero in tests.
type Service struct {
	store   kv.Store
	tokens  TokenIssuer
	logger  *zap.Logger
	latency time.Duration

	mu    sync.Mutex
	users []identity.User
}

// NewService loads the registered accounts from the store
func NewService(ctx context.Context, store kv.Store, tokens TokenIssuer, latency time.Duration, logger *zap.Logger) (*Service, error) {
	s := &Service{
		store:   store,
		tokens:  tokens,
		logger:  logger,
		latency: latency,
	}
	if _, err := store.Get(ctx, UsersStorageKey, &s.users); err != nil {
		return nil, err
	}
	return s, nil
}

// AuthResult is returned by register and login
type AuthResult struct {
	User  identity.Profile `json:"user"`
	Token string           `json:"token"`
}

// RegisterRequest carries the sign-up form fields
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=buyer seller"`
}

// Register creates an account, stores the session and issues a token.
// Email uniqueness is checked case-insensitively.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].EmailEquals(req.Email) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
		}
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}

	s.users = append(s.users, *user)
	if err := s.store.Set(ctx, UsersStorageKey, s.users); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return s.openSession(ctx, user)
}

// LoginRequest carries the login form fields
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and opens a session. Wrong email and wrong
// password produce the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].EmailEquals(req.Email) && s.users[i].CheckPassword(req.Password) {
			user := s.users[i]
			s.logger.Info("User logged in", zap.String("user_id", user.ID))
			return s.openSession(ctx, &user)
		}
	}
	return nil, shared.ErrInvalidCredentials
}

// openSession persists the credential-free profile and issues a token.
// Callers hold the lock.
func (s *Service) openSession(ctx context.Context, user *identity.User) (*AuthResult, error) {
	profile := user.Profile()
	if err := s.store.Set(ctx, SessionStorageKey, profile); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: profile, Token: token}, nil
}

// Logout discards the stored session
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, SessionStorageKey)
}

// CurrentSession returns the stored session profile, if any
func (s *Service) CurrentSession(ctx context.Context) (*identity.Profile, error) {
	var profile identity.Profile
	ok, err := s.store.Get(ctx, SessionStorageKey, &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, shared.ErrUnauthorized
	}
	return &profile, nil
}

// UpdateProfileRequest carries a partial profile update
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// UpdateProfile merges the non-nil fields into the account and refreshes
// the stored session when it belongs to the same user.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*identity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, shared.ErrNotFound
	}

	if req.Name != nil {
		s.users[idx].Name = *req.Name
	}
	if req.Avatar != nil {
		s.users[idx].Avatar = *req.Avatar
	}

	if err := s.store.Set(ctx, UsersStorageKey, s.users); err != nil {
		return nil, err
	}

	profile := s.users[idx].Profile()
	var session identity.Profile
	if ok, err := s.store.Get(ctx, SessionStorageKey, &session); err == nil && ok && session.ID == userID {
		if err := s.store.Set(ctx, SessionStorageKey, profile); err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
