package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"rewardsadmin/config"
	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
)

// LoginRequest defines the body for the local admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CheckAuthHandler reports whether the request carries the session cookie.
// @Summary      Check Session
// @Description  Presence of the `auth_token` cookie is the only check; its value is not verified here.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]string "{\"status\": \"authenticated\"}"
// @Failure      401  {object}  utils.APIError "{\"error\": \"Unauthorized\"}"
// @Router       /api/auth/check [get]
func CheckAuthHandler(c *gin.Context) {
	if !utils.HasSession(c, utils.AuthCookieName) {
		utils.GinUnauthorized(c, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "authenticated"})
}

// LogoutHandler expires the session cookie. It always succeeds.
// @Summary      Log Out
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]string "{\"message\": \"Logged out successfully\"}"
// @Router       /api/auth/logout [post]
func LogoutHandler(c *gin.Context) {
	utils.ClearSessionCookie(c, utils.AuthCookieName)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// LoginHandler authenticates the configured local admin and sets the session cookie.
// @Summary      Log In (local admin)
// @Description  Checks the credentials against the configured admin account and stores a signed
// @Description  session token in the `auth_token` cookie. Answers 503 when no admin is configured.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Admin credentials"
// @Success      200          {object}  map[string]string
// @Failure      400          {object}  utils.APIError
// @Failure      401          {object}  utils.APIError
// @Failure      503          {object}  utils.APIError
// @Router       /api/auth/login [post]
func LoginHandler(c *gin.Context, cfg *config.Config) {
	if !cfg.LoginEnabled() {
		utils.GinError(c, http.StatusServiceUnavailable, "Local login is not configured")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Always run the hash comparison so a wrong email costs as much as a wrong password.
	passwordOK := utils.CheckPasswordHash(req.Password, cfg.AdminPasswordHash)
	if !strings.EqualFold(req.Email, cfg.AdminEmail) || !passwordOK {
		utils.GinUnauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateSessionToken(cfg.AdminEmail, cfg)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to create session: %v", err))
		return
	}
	utils.SetSessionCookie(c, utils.AuthCookieName, token, cfg.TokenLifetime)

	log.Printf("INFO: Admin %s logged in", cfg.AdminEmail)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully"})
}
