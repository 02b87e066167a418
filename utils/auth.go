package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"rewardsadmin/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// AuthCookieName is the session cookie whose presence marks a request as authenticated.
	AuthCookieName = "auth_token"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// --- Password Hashing ---

// HashPassword generates a bcrypt hash for the given password.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plain text password with a stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// --- Session Token ---

// Claims is the payload of the session token stored in the auth cookie.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for the admin with the configured secret.
// The gate never verifies it; it is issued so an upstream service can.
func GenerateSessionToken(email string, cfg *config.Config) (string, error) {
	if cfg.JwtSecret == "" {
		return "", errors.New("session secret is not configured")
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "rewardsadmin",
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// --- Session Cookie ---

// HasSession reports whether the request carries a non-empty session cookie.
// Presence is the whole check: the value is neither decoded nor verified.
func HasSession(c *gin.Context, cookieName string) bool {
	value, err := c.Cookie(cookieName)
	return err == nil && value != ""
}

// SetSessionCookie stores token in the session cookie for the whole site.
func SetSessionCookie(c *gin.Context, cookieName, token string, lifetime time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(lifetime),
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie tells the client to drop the session cookie immediately.
func ClearSessionCookie(c *gin.Context, cookieName string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// --- Auth Gate ---

// GatedRoute is one page path guarded by the auth gate. Prefix routes also cover sub-paths.
type GatedRoute struct {
	Path   string
	Prefix bool
}

// GatedRoutes is the fixed list of dashboard pages the gate intercepts. Paths outside this
// list, including every /api route, are never redirected.
var GatedRoutes = []GatedRoute{
	{Path: "/"},
	{Path: LoginPath},
	{Path: DashboardPath, Prefix: true},
	{Path: "/brands", Prefix: true},
	{Path: "/vouchers", Prefix: true},
	{Path: "/coupons", Prefix: true},
	{Path: "/milestones", Prefix: true},
	{Path: "/users", Prefix: true},
	{Path: "/teams", Prefix: true},
	{Path: "/roles", Prefix: true},
}

// Matches reports whether path falls under the route. A single trailing slash is tolerated.
func (r GatedRoute) Matches(path string) bool {
	if path == r.Path || (r.Path != "/" && path == r.Path+"/") {
		return true
	}
	return r.Prefix && strings.HasPrefix(path, strings.TrimSuffix(r.Path, "/")+"/")
}

// IsGated reports whether any route in routes covers path.
func IsGated(path string, routes []GatedRoute) bool {
	for _, r := range routes {
		if r.Matches(path) {
			return true
		}
	}
	return false
}

// AuthGate creates a Gin middleware that redirects gated page requests based on the
// presence of the session cookie:
//   - no cookie, any gated page but the login page: redirect to the login page
//   - cookie, login page: redirect to the dashboard
//   - anything else passes through unchanged
func AuthGate(cookieName string, routes []GatedRoute) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !IsGated(path, routes) {
			c.Next()
			return
		}

		authenticated := HasSession(c, cookieName)
		onLogin := GatedRoute{Path: LoginPath}.Matches(path)
		switch {
		case !authenticated && !onLogin:
			log.Printf("DEBUG: Auth gate redirecting unauthenticated request for %s to %s", path, LoginPath)
			c.Redirect(http.StatusTemporaryRedirect, LoginPath)
			c.Abort()
		case authenticated && onLogin:
			c.Redirect(http.StatusTemporaryRedirect, DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
