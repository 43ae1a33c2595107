package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil-DevGeek/note-taker/middleware"
	"github.com/Swapnil-DevGeek/note-taker/usecase"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// GetUserHandler restores the session user from the token's email
// claim. Returns 201 on success — the original API does, and clients
// depend on it.
func GetUserHandler(c *gin.Context, users *usecase.UserService) {
	email := c.GetString(middleware.EmailKey)

	user, err := users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		utils.InternalError(c, "Internal server error")
		return
	}
	if user == nil {
		utils.BadRequest(c, "Email not found!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}
