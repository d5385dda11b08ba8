package services

import (
	"errors"
	"testing"
	"time"

	"backend/repository"

	"gorm.io/gorm"
)

func newTestAuth(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuth(t)

	user, err := svc.Register("Alice", "Alice@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if user.Role != "customer" {
		t.Errorf("role = %q, want customer", user.Role)
	}

	token, got, err := svc.Login("alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || got.ID != user.ID {
		t.Errorf("unexpected login result: token=%q user=%+v", token, got)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuth(t)

	if _, err := svc.Register("Alice", "a@b.c", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register("Alice Again", "A@B.C", "pw2"); err == nil {
		t.Error("duplicate email accepted")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuth(t)
	svc.Register("Alice", "a@b.c", "right")

	if _, _, err := svc.Login("a@b.c", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@b.c", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestFederatedExchangeCreatesAccount(t *testing.T) {
	svc, _ := newTestAuth(t)

	token, user, err := svc.ExchangeFederated("Alice", "a@b.c", "google-1")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if token == "" || user.ProviderUID != "google-1" {
		t.Errorf("unexpected exchange result: %+v", user)
	}

	// same uid again resolves to the same account
	_, again, err := svc.ExchangeFederated("Alice", "a@b.c", "google-1")
	if err != nil {
		t.Fatalf("second exchange: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("second exchange created a new account: %d vs %d", again.ID, user.ID)
	}
}

func TestFederatedExchangeLinksByEmail(t *testing.T) {
	svc, _ := newTestAuth(t)

	existing, err := svc.Register("Alice", "a@b.c", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, linked, err := svc.ExchangeFederated("Alice G", "a@b.c", "google-1")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if linked.ID != existing.ID {
		t.Errorf("expected link onto account %d, got %d", existing.ID, linked.ID)
	}
	if linked.ProviderUID != "google-1" {
		t.Errorf("provider uid not linked: %+v", linked)
	}
}

func TestFederatedOnlyAccountCannotPasswordLogin(t *testing.T) {
	svc, _ := newTestAuth(t)

	if _, _, err := svc.ExchangeFederated("Alice", "a@b.c", "google-1"); err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if _, _, err := svc.Login("a@b.c", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}
