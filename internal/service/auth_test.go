package service

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/storage/memstore"
	"bookshop-app/internal/utils"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	tokens := utils.NewTokenManager("test-secret", 1)
	return NewAuthService(memstore.New(), tokens, zaptest.NewLogger(t))
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthFixture(t)

	res, err := svc.Signup("admin", "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if res.Token == "" {
		t.Error("signup returned empty token")
	}
	if res.User.PasswordHash == "s3cret" {
		t.Error("password stored in plain text")
	}

	logged, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.Token == "" || logged.User.ID != res.User.ID {
		t.Errorf("login result mismatch: %+v", logged)
	}
}

func TestSignupDuplicate(t *testing.T) {
	svc := newAuthFixture(t)
	if _, err := svc.Signup("admin", "admin@example.com", "s3cret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := svc.Signup("admin", "other@example.com", "pw"); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("duplicate name accepted: %v", err)
	}
	if _, err := svc.Signup("other", "admin@example.com", "pw"); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("duplicate email accepted: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)
	if _, err := svc.Signup("admin", "admin@example.com", "s3cret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := svc.Login("admin", "wrong"); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("wrong password: expected unauthorized, got %v", err)
	}
	if _, err := svc.Login("nobody", "s3cret"); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("unknown user: expected unauthorized, got %v", err)
	}
	if _, err := svc.Login("", ""); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("empty credentials: expected validation error, got %v", err)
	}
}
