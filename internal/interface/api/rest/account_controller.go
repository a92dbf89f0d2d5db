package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-manager-api/internal/application/ports"
	domain "account-manager-api/internal/domain/account"
	accountDB "account-manager-api/internal/infrastructure/db/postgres/account"
	"account-manager-api/internal/infrastructure/jwt"
	"account-manager-api/internal/interface/api/rest/dto/account"
	"account-manager-api/internal/interface/api/rest/middleware"
	"account-manager-api/internal/interface/api/rest/validator"
)

type AccountController struct {
	accountService ports.AccountService
	logger         *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	accountService ports.AccountService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AccountController {
	ac := &AccountController{
		accountService: accountService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteAccounts, auth, ac.GetAccountsHandler)
	r.GET(RouteAccountsDeactivated, auth, ac.GetDeactivatedAccountsHandler)
	r.POST(RouteAccounts, auth, ac.CreateAccountHandler)
	r.DELETE(RouteAccount, auth, ac.DeactivateAccountHandler)
	r.POST(RouteAccountReactivate, auth, ac.ReactivateAccountHandler)
	r.PUT(RouteAccountPassword, auth, ac.ChangePasswordHandler)
	r.PUT(RouteAccountType, auth, ac.ChangeRoleHandler)

	return ac
}

// actorID comes from the validated token, set by the auth middleware.
func actorID(c *gin.Context) (domain.UUID, bool) {
	v, ok := c.Get(middleware.CtxActorID)
	if !ok {
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func (ac *AccountController) GetAccountsHandler(c *gin.Context) {
	accounts, err := ac.accountService.FindActive(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get accounts"},
		)
		ac.logger.Error("FindActive() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, account.ResponseData{
		Data: account.ToResponseAccounts(accounts),
	})
}

func (ac *AccountController) GetDeactivatedAccountsHandler(c *gin.Context) {
	accounts, err := ac.accountService.FindDeactivated(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get deactivated accounts"},
		)
		ac.logger.Error("FindDeactivated() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, account.ResponseData{
		Data: account.ToResponseAccounts(accounts),
	})
}

func (ac *AccountController) CreateAccountHandler(c *gin.Context) {
	var req account.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAccount(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	actor, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid actor identity"})
		return
	}

	a, err := ac.accountService.CreateAccount(c.Request.Context(), account.ToDomainAccount(req), req.Password, actor)
	if err != nil {
		if errors.Is(err, accountDB.ErrIdentificationTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create an account"},
		)
		ac.logger.Error("CreateAccount() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, account.ToResponseAccount(*a))
}

func (ac *AccountController) DeactivateAccountHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a valid UUID"},
		)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid actor identity"})
		return
	}

	a, err := ac.accountService.DeactivateAccount(c.Request.Context(), id, actor)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to deactivate account"},
		)
		ac.logger.Error("DeactivateAccount() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AccountController) ReactivateAccountHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a valid UUID"},
		)
		return
	}

	var req account.ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateNewPassword(req.NewPassword); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	actor, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid actor identity"})
		return
	}

	a, err := ac.accountService.ReactivateAccount(c.Request.Context(), id, req.NewPassword, actor)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to reactivate account"},
		)
		ac.logger.Error("ReactivateAccount() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) ChangePasswordHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a valid UUID"},
		)
		return
	}

	var req account.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateNewPassword(req.NewPassword); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	actor, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid actor identity"})
		return
	}

	a, err := ac.accountService.ChangePassword(c.Request.Context(), id, req.NewPassword, actor)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to change password"},
		)
		ac.logger.Error("ChangePassword() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AccountController) ChangeRoleHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a valid UUID"},
		)
		return
	}

	var req account.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateNewRole(req.NewType); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	actor, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid actor identity"})
		return
	}

	a, err := ac.accountService.ChangeRole(c.Request.Context(), id, req.NewType, actor)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to change role"},
		)
		ac.logger.Error("ChangeRole() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}
