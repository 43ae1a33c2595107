package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Swapnil-DevGeek/note-taker/dto"
	"github.com/Swapnil-DevGeek/note-taker/services"
	"github.com/Swapnil-DevGeek/note-taker/usecase"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

func LoginHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailNotFound):
			utils.TrackAuthAttempt("failure", "login")
			utils.BadRequest(c, "Email not found!")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.TrackAuthAttempt("failure", "login")
			utils.Unauthorized(c, "Invalid Credentials!")
		default:
			utils.Logger.Error("login failed", zap.Error(err))
			utils.TrackError("auth", "login_failed")
			utils.InternalError(c, "Internal server error")
		}
		return
	}

	token, err := services.GenerateToken(user.Email)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Internal server error")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User Logged In!",
		"token":   token,
		"user":    user,
	})
}
