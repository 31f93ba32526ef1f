// Package auth resolves login sessions and runs the Google OAuth
// sign-in flow.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/repository"
)

const (
	// SessionCookieName carries the raw session token.
	SessionCookieName = "blog_session"

	// LoginPath is where unauthenticated visitors are sent.
	LoginPath = "/login"

	sessionContextKey = "auth_session"
)

// SessionInfo is a resolved, unexpired session and its user.
type SessionInfo struct {
	Session domain.Session
	User    domain.User
}

// Config configures a Gateway.
type Config struct {
	// Secret keys the token hash stored in the sessions table.
	Secret       []byte
	TTL          time.Duration
	SecureCookie bool
	AllowList    *AllowList
	Google       GoogleConfig
}

// Gateway owns session cookies and the OAuth flow.
type Gateway struct {
	store     repository.Store
	secret    []byte
	ttl       time.Duration
	secure    bool
	allowList *AllowList
	google    *googleProvider
	now       func() time.Time
}

// NewGateway creates a Gateway over store. A missing secret is replaced
// by a random one, which invalidates sessions on restart.
func NewGateway(store repository.Store, cfg Config) (*Gateway, error) {
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		logger.Warn("SESSION_SECRET not set; sessions will not survive a restart")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &Gateway{
		store:     store,
		secret:    secret,
		ttl:       ttl,
		secure:    cfg.SecureCookie,
		allowList: cfg.AllowList,
		google:    newGoogleProvider(cfg.Google),
		now:       time.Now,
	}, nil
}

// AllowList returns the registration allow-list.
func (g *Gateway) AllowList() *AllowList {
	return g.allowList
}

// HashToken returns the keyed hash persisted for token.
func (g *Gateway) HashToken(token string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CreateSession starts a session for userID and returns the raw token
// to place in the cookie.
func (g *Gateway) CreateSession(ctx context.Context, userID string, r *http.Request) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := g.now()
	s := &domain.Session{
		TokenHash: g.HashToken(token),
		UserID:    userID,
		ExpiresAt: now.Add(g.ttl),
		CreatedAt: now,
	}
	if r != nil {
		s.IPAddress = clientIP(r)
		s.UserAgent = r.UserAgent()
	}
	if err := g.store.Sessions().Create(ctx, s); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// GetSession resolves the session cookie on r. It returns nil, nil when
// there is no valid session. Expired sessions are deleted on lookup.
func (g *Gateway) GetSession(ctx context.Context, r *http.Request) (*SessionInfo, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	hash := g.HashToken(cookie.Value)
	session, err := g.store.Sessions().GetByTokenHash(ctx, hash)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if session.Expired(g.now()) {
		if err := g.store.Sessions().Delete(ctx, hash); err != nil {
			return nil, fmt.Errorf("delete expired session: %w", err)
		}
		return nil, nil
	}

	user, err := g.store.Users().GetByID(ctx, session.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}

	return &SessionInfo{Session: *session, User: *user}, nil
}

// EndSession deletes the session named by the cookie on r, if any.
func (g *Gateway) EndSession(ctx context.Context, r *http.Request) error {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	if err := g.store.Sessions().Delete(ctx, g.HashToken(cookie.Value)); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// LoadSession attaches the session to the gin context when there is
// one. It never aborts.
func (g *Gateway) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := g.GetSession(c.Request.Context(), c.Request)
		if err != nil {
			logger.ErrorContext(c.Request.Context(), "Failed to load session", "error", err)
		}
		if info != nil {
			SetSession(c, info)
		}
		c.Next()
	}
}

// RequireAuth redirects to the login page unless the request carries a
// valid session.
func (g *Gateway) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFromContext(c) != nil {
			c.Next()
			return
		}

		info, err := g.GetSession(c.Request.Context(), c.Request)
		if err != nil {
			logger.ErrorContext(c.Request.Context(), "Failed to load session", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if info == nil {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		SetSession(c, info)
		c.Next()
	}
}

// SetSession attaches info to the gin context.
func SetSession(c *gin.Context, info *SessionInfo) {
	c.Set(sessionContextKey, info)
	if info != nil {
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), info.User.ID))
	}
}

// SessionFromContext returns the session attached by RequireAuth or
// LoadSession.
func SessionFromContext(c *gin.Context) *SessionInfo {
	if v, ok := c.Get(sessionContextKey); ok {
		if info, ok := v.(*SessionInfo); ok {
			return info
		}
	}
	return nil
}

// CurrentUser returns the signed-in user or nil.
func CurrentUser(c *gin.Context) *domain.User {
	if info := SessionFromContext(c); info != nil {
		return &info.User
	}
	return nil
}

func (g *Gateway) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(g.ttl.Seconds()), "/", "", g.secure, true)
}

func (g *Gateway) clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", g.secure, true)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return r.RemoteAddr
}
