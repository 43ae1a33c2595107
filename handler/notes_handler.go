package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Swapnil-DevGeek/note-taker/dto"
	"github.com/Swapnil-DevGeek/note-taker/middleware"
	"github.com/Swapnil-DevGeek/note-taker/model"
	"github.com/Swapnil-DevGeek/note-taker/usecase"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// resolveOwner looks the caller up from the token's email claim. Done
// on every request; identity is deliberately not cached.
func resolveOwner(c *gin.Context, users *usecase.UserService) (*model.User, bool) {
	email := c.GetString(middleware.EmailKey)

	user, err := users.FindByEmail(c.Request.Context(), email)
	if err != nil || user == nil {
		if err != nil {
			utils.Logger.Error("owner lookup failed", zap.Error(err))
		}
		utils.InternalError(c, "Internal server error")
		return nil, false
	}
	return user, true
}

func ListNotesHandler(c *gin.Context, users *usecase.UserService, notes *usecase.NotesService) {
	owner, ok := resolveOwner(c, users)
	if !ok {
		return
	}

	list, err := notes.ListNotes(c.Request.Context(), owner.UserID)
	if err != nil {
		utils.Logger.Error("listing notes failed", zap.Error(err))
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func CreateNoteHandler(c *gin.Context, users *usecase.UserService, notes *usecase.NotesService) {
	owner, ok := resolveOwner(c, users)
	if !ok {
		return
	}

	// Both fields are optional; an empty body means a fresh note.
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(c, "Invalid request")
		return
	}

	note, err := notes.CreateNote(c.Request.Context(), owner.UserID, req.Title, req.Content)
	if err != nil {
		utils.Logger.Error("creating note failed", zap.Error(err))
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, note)
}

func GetNoteHandler(c *gin.Context, users *usecase.UserService, notes *usecase.NotesService) {
	owner, ok := resolveOwner(c, users)
	if !ok {
		return
	}

	note, err := notes.GetNote(c.Request.Context(), c.Param("id"), owner.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, note)
}

func UpdateNoteHandler(c *gin.Context, users *usecase.UserService, notes *usecase.NotesService) {
	owner, ok := resolveOwner(c, users)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	note, err := notes.UpdateNote(c.Request.Context(), c.Param("id"), owner.UserID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.Logger.Error("updating note failed", zap.Error(err))
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, note)
}

func DeleteNoteHandler(c *gin.Context, users *usecase.UserService, notes *usecase.NotesService) {
	owner, ok := resolveOwner(c, users)
	if !ok {
		return
	}

	err := notes.DeleteNote(c.Request.Context(), c.Param("id"), owner.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
