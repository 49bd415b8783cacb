package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mamacare-api/internal/repository"
	"mamacare-api/internal/service"
)

// AccountHandler holds dependencies for the registration and login endpoints.
type AccountHandler struct {
	logger      *zap.Logger
	accountServ *service.AccountService
	tokenServ   *service.TokenService
}

// NewAccountHandler creates an AccountHandler with its dependencies.
func NewAccountHandler(logger *zap.Logger, accountServ *service.AccountService, tokenServ *service.TokenService) *AccountHandler {
	return &AccountHandler{
		logger:      logger,
		accountServ: accountServ,
		tokenServ:   tokenServ,
	}
}

// Register handles POST /register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	_, err := h.accountServ.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken),
			errors.Is(err, repository.ErrUsernameTaken),
			errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		default:
			h.logger.Error("register failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

// Login handles POST /login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	account, err := h.accountServ.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound),
			errors.Is(err, service.ErrWrongPassword),
			errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}
	}

	token, err := h.tokenServ.Issue(account)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "login successful",
		"token":    token,
		"username": account.Username,
	})
}

// Protected handles GET /protected, reachable only through BearerAuth.
func (h *AccountHandler) Protected(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "access granted",
		"user": gin.H{
			"userId": claims.UserID,
			"email":  claims.Email,
		},
	})
}
