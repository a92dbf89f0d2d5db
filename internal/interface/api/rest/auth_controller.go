package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"account-manager-api/internal/application/ports"
	"account-manager-api/internal/application/services"
	"account-manager-api/internal/interface/api/rest/dto/auth"
	"account-manager-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger         *zap.Logger
	accountService ports.AccountService
	authService    ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	accountService ports.AccountService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		accountService: accountService,
		authService:    authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

// LoginHandler looks the account up by identification and hands it to the
// auth service for the hash comparison. A missing row, a deactivated row
// and a wrong password are indistinguishable to the caller.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.FindByIdentification(c.Request.Context(), req.Identification)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get an account"},
		)
		ac.logger.Error("FindByIdentification() error", zap.Error(err))
		return
	}
	if a == nil || !a.Active {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(a, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("account_id", a.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
