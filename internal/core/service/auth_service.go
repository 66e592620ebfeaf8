package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mywallet/wallet-system/internal/api/metrics"
	"github.com/mywallet/wallet-system/internal/core/domain"
	"github.com/mywallet/wallet-system/internal/core/ports"
)

// AuthService implements registration, login, and logout.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	bcryptCost int
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, sessions: sessions, bcryptCost: bcryptCost}
}

// Register hashes the password and inserts the user. Email uniqueness is
// enforced by the repository's conditional insert, not checked here first.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return nil
}

// Login verifies the credentials and opens a new session, returning its
// opaque token. An unknown email and a wrong password take the same exit:
// callers cannot tell which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Create(ctx, &domain.Session{Token: token, UserID: user.ID}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, nil
}

// Logout revokes the session matching token. Revoking a token that was
// never issued, or was already revoked, still succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	metrics.SessionsRevokedTotal.Inc()
	return nil
}
