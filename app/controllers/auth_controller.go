package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"pressroom/app/auth"
	"pressroom/app/config"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthController issues admin tokens. Verification of issued tokens is the
// auth gateway's job; this controller only checks credentials at login.
type AuthController struct {
	gateway *auth.Gateway
	cfg     *config.Config
	logger  *zap.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(gateway *auth.Gateway, cfg *config.Config, logger *zap.Logger) *AuthController {
	return &AuthController{gateway: gateway, cfg: cfg, logger: logger}
}

// Login checks the admin credentials and returns a signed bearer token.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(ac.cfg.AdminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(ac.cfg.AdminPasswordHash), []byte(creds.Password))
	if !usernameOK || passwordErr != nil {
		ac.logger.Warn("failed login attempt", zap.String("username", creds.Username))
		sendError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := ac.gateway.Issue(creds.Username)
	if err != nil {
		sendServiceError(w, err, ac.logger)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{
		"token":     token,
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
	})
}
