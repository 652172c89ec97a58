package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/internal/auth"
)

type AuthHandler struct {
	provider auth.Provider
	sessions *auth.SessionStore
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(provider auth.Provider, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{provider: provider, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 通过所配置的 provider 登录，下发不透明会话令牌
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.provider.Login(c, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, auth.ErrNotConfigured):
			klog.Errorf("认证提供方未配置: provider=%s", h.provider.Name())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth provider not configured"})
		default:
			klog.Errorf("登录失败: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	token := h.sessions.Create(user)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout 注销当前会话
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.sessions.Delete(token)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me 返回当前会话用户
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.sessions.Get(bearerToken(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RequireSession 会话校验中间件，adminOnly 时还要求管理员角色
func RequireSession(sessions *auth.SessionStore, adminOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.Get(bearerToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if adminOnly && !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
