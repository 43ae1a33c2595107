package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil-DevGeek/note-taker/editor"
	"github.com/Swapnil-DevGeek/note-taker/usecase"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// ExportNoteHandler renders a note as a markdown download. The
// conversion is best-effort: nested structures lose fidelity.
func ExportNoteHandler(c *gin.Context, users *usecase.UserService, notes *usecase.NotesService) {
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

	markdown := editor.ExportMarkdown(note.Title, note.Content)
	filename := editor.MarkdownFileName(note.Title)

	utils.TrackNoteOperation("export")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}
