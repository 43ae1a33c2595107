package usecase

import (
	"context"

	"github.com/Swapnil-DevGeek/note-taker/model"
	"github.com/Swapnil-DevGeek/note-taker/repository"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// ErrNoteNotFound is re-exported so handlers don't reach into the
// repository package for error mapping.
var ErrNoteNotFound = repository.ErrNoteNotFound

// NotesRepository is the storage surface the notes service needs.
type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID, title, content string) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type NotesService struct {
	NotesRepo NotesRepository
}

// CreateNote inserts a note, defaulting the title to "Untitled" and
// the content to empty.
func (s *NotesService) CreateNote(ctx context.Context, userID, title, content string) (*model.Note, error) {
	if title == "" {
		title = "Untitled"
	}

	note := &model.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// ListNotes returns the caller's notes, most recently updated first.
func (s *NotesService) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return s.NotesRepo.GetUserNotes(ctx, userID)
}

func (s *NotesService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return s.NotesRepo.GetNote(ctx, noteID, userID)
}

// UpdateNote sets title and content and returns the updated record.
func (s *NotesService) UpdateNote(ctx context.Context, noteID, userID, title, content string) (*model.Note, error) {
	note, err := s.NotesRepo.UpdateNote(ctx, noteID, userID, title, content)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	if err := s.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}
