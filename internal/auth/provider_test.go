package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/easyonboard/backend/config"
)

func TestSimpleProviderCredentials(t *testing.T) {
	p := &simpleProvider{cfg: config.SimpleAuthConfig{
		UserUsername:  "user",
		UserPassword:  "user-pass",
		AdminUsername: "admin",
		AdminPassword: "admin-pass",
	}}
	ctx := context.Background()

	admin, err := p.Login(ctx, "admin", "admin-pass")
	if err != nil {
		t.Fatalf("admin login error: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("expected admin user")
	}

	user, err := p.Login(ctx, "user", "user-pass")
	if err != nil {
		t.Fatalf("user login error: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("regular user must not be admin")
	}

	if _, err := p.Login(ctx, "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSimpleProviderNotConfigured(t *testing.T) {
	p := &simpleProvider{}
	if _, err := p.Login(context.Background(), "a", "b"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCognitoProviderSimulation(t *testing.T) {
	p := &cognitoProvider{cfg: config.CognitoAuthConfig{
		UserPoolID:     "pool",
		ClientID:       "client",
		Region:         "us-east-1",
		AdminGroupName: "Administrators",
	}}
	ctx := context.Background()

	user, err := p.Login(ctx, "admin-jane", "anything")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if !user.IsAdmin {
		t.Fatal("username containing admin should map to the admin group")
	}

	if _, err := p.Login(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// 未配置管理员组时没有人是管理员
	noGroup := &cognitoProvider{cfg: config.CognitoAuthConfig{
		UserPoolID: "pool",
		ClientID:   "client",
		Region:     "us-east-1",
	}}
	user, err = noGroup.Login(ctx, "admin-jane", "anything")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("no admin group configured, user must not be admin")
	}
}

func TestNewProviderSelection(t *testing.T) {
	for _, name := range []string{"none", "simple", "cognito", "azure", "google"} {
		p, err := NewProvider(&config.AuthConfig{Provider: name})
		if err != nil {
			t.Fatalf("NewProvider(%s) error: %v", name, err)
		}
		if p.Name() != name {
			t.Fatalf("expected provider %s, got %s", name, p.Name())
		}
	}
	if _, err := NewProvider(&config.AuthConfig{Provider: "ldap"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	token := store.Create(&User{ID: "u1"})
	if token == "" {
		t.Fatal("expected token")
	}

	user, ok := store.Get(token)
	if !ok || user.ID != "u1" {
		t.Fatalf("unexpected session lookup: %+v ok=%v", user, ok)
	}

	store.Delete(token)
	if _, ok := store.Get(token); ok {
		t.Fatal("session should be gone")
	}
}
