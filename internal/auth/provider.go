package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/config"
)

var (
	// ErrInvalidCredentials 用户名或密码不匹配
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotConfigured 所选 provider 缺少必要配置
	ErrNotConfigured = errors.New("auth provider not configured")
)

// User 登录成功后的用户信息
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Provider 可插拔认证提供方
// 全部为模拟实现：不做真实的协议交互、令牌校验或会话加密
type Provider interface {
	Name() string
	Login(ctx context.Context, username, password string) (*User, error)
}

// NewProvider 按配置选择认证提供方
func NewProvider(cfg *config.AuthConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "none":
		return &noneProvider{}, nil
	case "simple":
		return &simpleProvider{cfg: cfg.Simple}, nil
	case "cognito":
		return &cognitoProvider{cfg: cfg.Cognito}, nil
	case "azure":
		return &azureProvider{cfg: cfg.Azure}, nil
	case "google":
		return &googleProvider{cfg: cfg.Google}, nil
	default:
		return nil, fmt.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// noneProvider 不做认证，所有人都是管理员
type noneProvider struct{}

func (p *noneProvider) Name() string { return "none" }

func (p *noneProvider) Login(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		username = "guest"
	}
	return &User{ID: username, Name: username, IsAdmin: true}, nil
}

// simpleProvider 校验配置中的用户/管理员凭据
type simpleProvider struct {
	cfg config.SimpleAuthConfig
}

func (p *simpleProvider) Name() string { return "simple" }

func (p *simpleProvider) Login(ctx context.Context, username, password string) (*User, error) {
	if p.cfg.UserUsername == "" || p.cfg.AdminUsername == "" {
		return nil, ErrNotConfigured
	}

	switch {
	case username == p.cfg.AdminUsername && password == p.cfg.AdminPassword:
		return p.user(username, true), nil
	case username == p.cfg.UserUsername && password == p.cfg.UserPassword:
		return p.user(username, false), nil
	default:
		return nil, ErrInvalidCredentials
	}
}

func (p *simpleProvider) user(username string, isAdmin bool) *User {
	return &User{
		ID:      username,
		Name:    username,
		Email:   username + "@company.com",
		IsAdmin: isAdmin,
	}
}

// cognitoProvider 模拟 Cognito：不调用 AWS，凭据非空即通过
// 真实实现应走 Cognito SDK 并按用户组判定管理员
type cognitoProvider struct {
	cfg config.CognitoAuthConfig
}

func (p *cognitoProvider) Name() string { return "cognito" }

func (p *cognitoProvider) Login(ctx context.Context, username, password string) (*User, error) {
	if p.cfg.UserPoolID == "" || p.cfg.ClientID == "" || p.cfg.Region == "" {
		return nil, ErrNotConfigured
	}
	klog.V(6).Infof("Cognito 模拟登录: username=%s, userPool=%s, region=%s", username, p.cfg.UserPoolID, p.cfg.Region)

	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	// 模拟用户组判定：用户名含 admin 视为已加入配置的管理员组
	// 未配置管理员组时没有人是管理员
	isAdmin := p.cfg.AdminGroupName != "" && strings.Contains(username, "admin")
	klog.V(6).Infof("Cognito 模拟用户组判定: username=%s, adminGroup=%s, isAdmin=%v", username, p.cfg.AdminGroupName, isAdmin)
	return &User{
		ID:      username,
		Name:    username,
		Email:   username + "@company.com",
		IsAdmin: isAdmin,
	}, nil
}

// azureProvider 模拟 Azure AD：不做重定向，返回固定用户
type azureProvider struct {
	cfg config.AzureAuthConfig
}

func (p *azureProvider) Name() string { return "azure" }

func (p *azureProvider) Login(ctx context.Context, username, password string) (*User, error) {
	if p.cfg.ClientID == "" || p.cfg.Authority == "" || p.cfg.RedirectURI == "" {
		return nil, ErrNotConfigured
	}
	klog.V(6).Infof("Azure AD 模拟登录: authority=%s", p.cfg.Authority)

	// 配置了管理员组即视为组内成员
	return &User{
		ID:      "azure-user",
		Name:    "Azure User",
		Email:   "user@company.com",
		IsAdmin: p.cfg.AdminGroupID != "",
	}, nil
}

// googleProvider 模拟 Google OAuth：按邮箱域判定管理员
type googleProvider struct {
	cfg config.GoogleAuthConfig
}

func (p *googleProvider) Name() string { return "google" }

func (p *googleProvider) Login(ctx context.Context, username, password string) (*User, error) {
	if p.cfg.ClientID == "" || p.cfg.RedirectURI == "" {
		return nil, ErrNotConfigured
	}
	klog.V(6).Infof("Google 模拟登录: clientID=%s", p.cfg.ClientID)

	email := "user@gmail.com"
	if username != "" {
		email = username
	}
	isAdmin := p.cfg.AdminDomain != "" && strings.HasSuffix(email, p.cfg.AdminDomain)
	return &User{
		ID:      "google-user",
		Name:    "Google User",
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}
