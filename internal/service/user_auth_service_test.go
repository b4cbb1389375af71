package service

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var tokenKeyPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.AuthToken{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewUserAuthService(repository.NewUserRepository(db), repository.NewAuthTokenRepository(db), 0), db
}

func registerTestUser(t *testing.T, svc *UserAuthService, email string) (*models.User, string) {
	t.Helper()
	user, token, err := svc.Register(RegisterInput{
		Email:           email,
		Username:        "ava",
		FirstName:       "Ava",
		LastName:        "Stone",
		Password:        "sup3r-secret",
		PasswordConfirm: "sup3r-secret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user, token
}

func TestRegisterIssuesHexToken(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, token := registerTestUser(t, svc, "ava@example.com")
	if user.ID == 0 {
		t.Fatalf("expected persisted user, got %+v", user)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}
	if !tokenKeyPattern.MatchString(token) {
		t.Fatalf("expected 40-char hex token, got %q", token)
	}
	if user.PasswordHash == "sup3r-secret" {
		t.Fatalf("password stored in plain text")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	registerTestUser(t, svc, "taken@example.com")

	cases := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"invalid email", RegisterInput{Email: "not-an-email", Password: "sup3r-secret", PasswordConfirm: "sup3r-secret"}, ErrInvalidEmail},
		{"short password", RegisterInput{Email: "new@example.com", Password: "short", PasswordConfirm: "short"}, ErrPasswordTooShort},
		{"mismatch", RegisterInput{Email: "new@example.com", Password: "sup3r-secret", PasswordConfirm: "sup3r-other"}, ErrPasswordMismatch},
		{"duplicate email", RegisterInput{Email: "taken@example.com", Password: "sup3r-secret", PasswordConfirm: "sup3r-secret"}, ErrEmailExists},
	}
	for _, tc := range cases {
		if _, _, err := svc.Register(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRegisterConfigurablePasswordMinLength(t *testing.T) {
	_, db := setupUserAuthServiceTest(t)
	svc := NewUserAuthService(repository.NewUserRepository(db), repository.NewAuthTokenRepository(db), 12)

	input := RegisterInput{Email: "ava@example.com", Password: "elevenchars", PasswordConfirm: "elevenchars"}
	if _, _, err := svc.Register(input); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort below configured minimum, got %v", err)
	}

	input.Password = "twelve-chars"
	input.PasswordConfirm = "twelve-chars"
	if _, _, err := svc.Register(input); err != nil {
		t.Fatalf("register at configured minimum failed: %v", err)
	}
}

func TestLoginReusesExistingToken(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	_, registerToken := registerTestUser(t, svc, "ava@example.com")

	user, loginToken, err := svc.Login("Ava@Example.com", "sup3r-secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginToken != registerToken {
		t.Fatalf("expected token reuse, register=%q login=%q", registerToken, loginToken)
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected last_login_at to be set")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	registerTestUser(t, svc, "ava@example.com")

	if _, _, err := svc.Login("ava@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "sup3r-secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	user, _ := registerTestUser(t, svc, "ava@example.com")

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, err := svc.Login("ava@example.com", "sup3r-secret"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	user, token := registerTestUser(t, svc, "ava@example.com")

	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.GetUserByToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected revoked token to be invalid, got %v", err)
	}
	if err := svc.Logout(user.ID); !errors.Is(err, ErrLogoutFailed) {
		t.Fatalf("expected ErrLogoutFailed on second logout, got %v", err)
	}
}

func TestGetUserByToken(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	user, token := registerTestUser(t, svc, "ava@example.com")

	resolved, err := svc.GetUserByToken(token)
	if err != nil {
		t.Fatalf("resolve token failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, resolved.ID)
	}

	if _, err := svc.GetUserByToken("deadbeef"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for short key, got %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, err := svc.GetUserByToken(token); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}
