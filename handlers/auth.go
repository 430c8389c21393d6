package handlers

import (
	"net/http"
	"time"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler handles registration and login. Tokens are stored as hashes so
// a leaked database row cannot be replayed.
type AuthHandler struct {
	users  userRepo.UserRepository
	logger *zap.Logger
}

func NewAuthHandler(users userRepo.UserRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		return
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         models.RolePatient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.GetByEmail(ctx, input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	if err := h.users.UpdateTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		h.logger.Error("failed to persist token hash", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
