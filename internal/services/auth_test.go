package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/testutil"
	userrepo "github.com/yungbote/maturitypath-backend/internal/data/repos/user"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

func newAuthForTest(t *testing.T) AuthService {
	t.Helper()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	return NewAuthService(
		tx, log,
		userrepo.NewUserRepo(tx, log),
		userrepo.NewUserTokenRepo(tx, log),
		"test-secret",
		15*time.Minute,
		24*time.Hour,
	)
}

func TestAuthServiceRegisterLoginRefreshLogout(t *testing.T) {
	svc := newAuthForTest(t)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, RegisterInput{
		Email:     "  AuthFlow@Example.com ",
		Password:  "correct horse",
		FirstName: " Ada ",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.Email != "authflow@example.com" || user.FirstName != "Ada" {
		t.Fatalf("registration did not normalize input: %+v", user)
	}
	if user.Role != types.RoleMember {
		t.Fatalf("role=%s, want member", user.Role)
	}
	if user.Password == "correct horse" {
		t.Fatalf("password stored in plaintext")
	}

	if _, err := svc.RegisterUser(ctx, RegisterInput{
		Email:    "authflow@example.com",
		Password: "correct horse",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate registration err=%v, want ErrEmailTaken", err)
	}

	if _, err := svc.LoginUser(ctx, "authflow@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password err=%v, want ErrInvalidCredentials", err)
	}

	pair, err := svc.LoginUser(ctx, "authflow@example.com", "correct horse")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty token pair: %+v", pair)
	}

	uid, role, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if uid != user.ID || role != types.RoleMember {
		t.Fatalf("claims wrong: uid=%s role=%s", uid, role)
	}

	rotated, err := svc.RefreshUser(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}
	// The old refresh token is gone after rotation.
	if _, err := svc.RefreshUser(ctx, pair.RefreshToken); !errors.Is(err, ErrRefreshUnknown) {
		t.Fatalf("stale refresh err=%v, want ErrRefreshUnknown", err)
	}

	if err := svc.LogoutUser(ctx, user.ID); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}
	if _, err := svc.RefreshUser(ctx, rotated.RefreshToken); !errors.Is(err, ErrRefreshUnknown) {
		t.Fatalf("refresh after logout err=%v, want ErrRefreshUnknown", err)
	}
}

func TestAuthServiceRejectsTamperedToken(t *testing.T) {
	svc := newAuthForTest(t)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, RegisterInput{
		Email:    "tamper@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	pair, err := svc.LoginUser(ctx, user.Email, "correct horse")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	if _, _, err := svc.ParseAccessToken(pair.AccessToken + "x"); err == nil {
		t.Fatalf("tampered token accepted")
	}
	if _, _, err := svc.ParseAccessToken(""); err == nil {
		t.Fatalf("empty token accepted")
	}
}
