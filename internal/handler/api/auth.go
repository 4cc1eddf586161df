package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/cookie"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	jwtCfg      config.JWTConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cookieCfg,
		jwtCfg:      jwtCfg,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, user, err := h.authUseCase.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token, h.jwtCfg.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		User:        user,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Logout clears the access-token cookie; the JWT itself stays valid until
// expiry, clients must drop their copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	user, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
