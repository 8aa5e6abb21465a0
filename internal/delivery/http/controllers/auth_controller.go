package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "poapregistry/internal/delivery/http/helpers"
	"poapregistry/internal/domain"
)

// TokenRequest is the request body for POST /auth/token
type TokenRequest struct {
	Address string `json:"address"`
	APIKey  string `json:"api_key"`
}

// Validate implements Validator.
func (t TokenRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(t.Address) == "" {
		errs = append(errs, "address is required")
	}
	if t.APIKey == "" {
		errs = append(errs, "api_key is required")
	}
	return errs
}

// TokenResponse is the response body for POST /auth/token
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type AuthController struct {
	Logger      *slog.Logger
	Service     domain.AuthService
	TokenExpiry time.Duration
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, expiry time.Duration) *AuthController {
	return &AuthController{
		Logger:      logger,
		Service:     svc,
		TokenExpiry: expiry,
	}
}

// IssueToken godoc
// @Summary Exchange an API key for a bearer token
// @Description The token subject is the caller address; commands sent with it act as that address.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body TokenRequest true "Address and API key"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} h.APIResponse "error.code: bad_request, invalid_address"
// @Failure 401 {object} h.APIResponse "error.code: invalid_credentials"
// @Failure 500 {object} h.APIResponse "error.code: internal_error"
// @Router /auth/token [post]
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.IssueToken(r.Context(), strings.TrimSpace(req.Address), req.APIKey)
	if err != nil {
		c.Logger.InfoContext(r.Context(), "token request rejected", "address", req.Address, "code", domain.ErrorCode(err))
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(c.TokenExpiry.Seconds()),
	})
}
