package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
)

const (
	stateCookieName = "blog_oauth_state"
	stateTTL        = 10 * time.Minute

	// DashboardPath is where a completed sign-in lands.
	DashboardPath = "/admin/dashboard"

	// SignInPath starts the Google flow.
	SignInPath = "/api/auth/sign-in/google"

	// CallbackPath receives the provider redirect; BASE_URL + CallbackPath
	// must be registered with Google.
	CallbackPath = "/api/auth/callback/google"

	defaultUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// GoogleConfig configures the Google OAuth client. Endpoint and
// UserInfoURL default to Google's and are overridden in tests.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Endpoint     oauth2.Endpoint
	UserInfoURL  string
	HTTPClient   *http.Client
}

type googleProvider struct {
	oauth       *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

func newGoogleProvider(cfg GoogleConfig) *googleProvider {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = endpoints.Google
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = defaultUserInfoURL
	}
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: userInfoURL,
		httpClient:  cfg.HTTPClient,
	}
}

func (p *googleProvider) context(ctx context.Context) context.Context {
	if p.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	return ctx
}

// googleProfile is the subset of the OpenID userinfo response we use.
type googleProfile struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (p *googleProvider) profile(ctx context.Context, code string) (*googleProfile, error) {
	ctx = p.context(ctx)
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}
	resp, err := p.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var prof googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&prof); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if prof.Email == "" {
		return nil, errors.New("userinfo has no email")
	}
	return &prof, nil
}

// RegisterRoutes mounts the sign-in, callback and sign-out endpoints
// under /api/auth.
func (g *Gateway) RegisterRoutes(r gin.IRouter) {
	grp := r.Group("/api/auth")
	grp.GET("/sign-in/google", g.SignIn)
	grp.GET("/callback/google", g.Callback)
	grp.POST("/sign-out", g.SignOut)
}

// SignIn handles GET /api/auth/sign-in/google
func (g *Gateway) SignIn(c *gin.Context) {
	state, err := newToken()
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to create oauth state", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, int(stateTTL.Seconds()), "/api/auth", "", g.secure, true)
	c.Redirect(http.StatusFound, g.google.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// Callback handles GET /api/auth/callback/google
func (g *Gateway) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	expected, _ := c.Cookie(stateCookieName)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, "", -1, "/api/auth", "", g.secure, true)

	if e := c.Query("error"); e != "" {
		g.failSignIn(c, "failed", "access_denied", errors.New(e))
		return
	}
	state := c.Query("state")
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		g.failSignIn(c, "failed", "invalid_state", errors.New("state mismatch"))
		return
	}

	prof, err := g.google.profile(ctx, c.Query("code"))
	if err != nil {
		g.failSignIn(c, "failed", "oauth", err)
		return
	}

	user, err := g.findOrCreateUser(ctx, prof)
	if errors.Is(err, domain.ErrEmailNotAllowed) {
		g.failSignIn(c, "rejected", "not_allowed", err)
		return
	}
	if err != nil {
		g.failSignIn(c, "failed", "server", err)
		return
	}

	token, err := g.CreateSession(ctx, user.ID, c.Request)
	if err != nil {
		g.failSignIn(c, "failed", "server", err)
		return
	}

	g.setSessionCookie(c, token)
	metrics.AuthEventsTotal.WithLabelValues("sign_in").Inc()
	logger.InfoContext(ctx, "User signed in", "user_id", user.ID)
	c.Redirect(http.StatusFound, DashboardPath)
}

func (g *Gateway) failSignIn(c *gin.Context, event, reason string, err error) {
	metrics.AuthEventsTotal.WithLabelValues(event).Inc()
	logger.WarnContext(c.Request.Context(), "Sign-in failed", "reason", reason, "error", err)
	c.Redirect(http.StatusFound, LoginPath+"?error="+reason)
}

func (g *Gateway) findOrCreateUser(ctx context.Context, prof *googleProfile) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(prof.Email))
	user, err := g.store.Users().GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := g.allowList.BeforeUserCreate(email); err != nil {
		return nil, err
	}

	name := prof.Name
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	user = &domain.User{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		EmailVerified: prof.EmailVerified,
	}
	if prof.Picture != "" {
		user.Image = &prof.Picture
	}
	if err := g.store.Users().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// SignOut handles POST /api/auth/sign-out
func (g *Gateway) SignOut(c *gin.Context) {
	if err := g.EndSession(c.Request.Context(), c.Request); err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to end session", "error", err)
	}
	g.clearCookie(c, SessionCookieName)
	metrics.AuthEventsTotal.WithLabelValues("sign_out").Inc()
	c.Redirect(http.StatusSeeOther, LoginPath)
}
