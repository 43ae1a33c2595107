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

func RegistrationHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateEmail) {
			utils.TrackAuthAttempt("failure", "register")
			utils.BadRequest(c, "Email already exists!")
			return
		}
		utils.Logger.Error("registration failed", zap.Error(err))
		utils.TrackError("auth", "registration_failed")
		utils.InternalError(c, "Internal server error")
		return
	}

	token, err := services.GenerateToken(user.Email)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Internal server error")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully!",
		"token":   token,
		"user":    user,
	})
}
