package controllers

import (
	"catalog-backend/repositories"
	"catalog-backend/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users  repositories.UserRepository
	Tokens utils.TokenConfig
	Logger *zap.Logger
}

// Login exchanges credentials of an enabled, live user for a bearer token
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := c.Request.Context()
	user, err := ac.Users.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			ac.Logger.Error("login lookup failed", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Disabled and deleted accounts look exactly like unknown ones
	if !user.IsUsable() || !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	role := ""
	if user.Role != nil {
		role = string(user.Role.Name)
	}
	token, err := utils.GenerateToken(ac.Tokens, user.ID, role)
	if err != nil {
		ac.Logger.Error("token signing failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := ac.Users.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		ac.Logger.Warn("recording last login failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	c.SetCookie("token", token, int(ac.Tokens.TTL.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  role,
		},
	})
}
