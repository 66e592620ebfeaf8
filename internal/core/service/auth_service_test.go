package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mywallet/wallet-system/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.Email] = &clone
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

type stubSessionRepo struct {
	sessions map[string]int64
	err      error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]int64)}
}

func (r *stubSessionRepo) Create(_ context.Context, session *domain.Session) error {
	if r.err != nil {
		return r.err
	}
	r.sessions[session.Token] = session.UserID
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.sessions, token)
	return nil
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubSessionRepo(), bcrypt.MinCost)

	if err := svc.Register(context.Background(), "Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := users.users["ana@x.com"]
	if stored == nil {
		t.Fatalf("user was not persisted")
	}
	if stored.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubSessionRepo(), bcrypt.MinCost)

	if err := svc.Register(context.Background(), "Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if err := svc.Register(context.Background(), "Other", "ana@x.com", "pw2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_OpensSessionPerCall(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := NewAuthService(users, sessions, bcrypt.MinCost)

	if err := svc.Register(context.Background(), "Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	first, err := svc.Login(context.Background(), "ana@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if first == "" {
		t.Fatalf("expected a token")
	}

	second, err := svc.Login(context.Background(), "ana@x.com", "pw")
	if err != nil {
		t.Fatalf("second Login returned error: %v", err)
	}
	if second == first {
		t.Fatalf("expected a fresh token per login")
	}
	if len(sessions.sessions) != 2 {
		t.Fatalf("expected one session row per login, got %d", len(sessions.sessions))
	}
	if sessions.sessions[first] != 1 || sessions.sessions[second] != 1 {
		t.Fatalf("sessions not bound to the user: %+v", sessions.sessions)
	}
}

func TestAuthService_Login_RejectionIsIndistinguishable(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubSessionRepo(), bcrypt.MinCost)

	if err := svc.Register(context.Background(), "Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "nobody@x.com", "pw")
	_, wrongErr := svc.Login(context.Background(), "ana@x.com", "not-pw")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("rejections must be identical: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	users := newStubUserRepo()
	users.err = errors.New("connection refused")
	svc := NewAuthService(users, newStubSessionRepo(), bcrypt.MinCost)

	if _, err := svc.Login(context.Background(), "ana@x.com", "pw"); errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure must not masquerade as a credential rejection")
	} else if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := NewAuthService(users, sessions, bcrypt.MinCost)

	if err := svc.Register(context.Background(), "Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	token, err := svc.Login(context.Background(), "ana@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, alive := sessions.sessions[token]; alive {
		t.Fatalf("session not revoked")
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("repeated Logout must succeed, got %v", err)
	}
	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Fatalf("Logout of an unknown token must succeed, got %v", err)
	}
}
