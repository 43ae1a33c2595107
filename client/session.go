package client

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/Swapnil-DevGeek/note-taker/autosave"
	"github.com/Swapnil-DevGeek/note-taker/editor"
)

// ErrTitleTooLong mirrors the title form validation.
var ErrTitleTooLong = errors.New("Title too long")

const maxTitleLength = 100

// Session is one open note: the editor, the debounced saver and the
// API client glued together. Every content or title change reschedules
// the save; the save always carries the latest serialization.
type Session struct {
	client *Client
	editor *editor.Editor
	saver  *autosave.Coordinator
	noteID string
	title  string
}

// NewSession opens a note for editing. delay <= 0 uses the default
// one second quiet period.
func NewSession(c *Client, noteID string, delay time.Duration) *Session {
	s := &Session{
		client: c,
		editor: editor.New(),
		noteID: noteID,
	}
	s.saver = autosave.New(delay, func(title, content string) error {
		_, err := c.UpdateNote(context.Background(), s.noteID, title, content)
		return err
	})
	return s
}

func (s *Session) Editor() *editor.Editor { return s.editor }

func (s *Session) Title() string { return s.title }

// Load fetches the note and overwrites the editor content wholesale
// when it differs from the current serialization. No diff, no merge.
func (s *Session) Load(ctx context.Context) error {
	note, err := s.client.Note(ctx, s.noteID)
	if err != nil {
		return err
	}
	s.title = note.Title
	if s.editor.HTML() != note.Content {
		return s.editor.SetContent(note.Content)
	}
	return nil
}

// SetTitle updates the title and schedules a save.
func (s *Session) SetTitle(title string) error {
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	s.title = title
	s.scheduleSave()
	return nil
}

// ContentChanged is the editor's onUpdate hook: call it after every
// document mutation so the save timer restarts.
func (s *Session) ContentChanged() {
	s.scheduleSave()
}

// Flush persists a pending change immediately, for explicit saves.
func (s *Session) Flush() {
	s.saver.Flush()
}

// Close drops any pending save without persisting it.
func (s *Session) Close() {
	s.saver.Stop()
}

// Dirty reports whether edits are waiting on the quiet period.
func (s *Session) Dirty() bool {
	return s.saver.PendingSave()
}

// SaveFailed reports the generic mutation-error state of the last
// save attempt.
func (s *Session) SaveFailed() bool {
	return s.saver.Failed()
}

// ExportMarkdown writes the note as markdown, converted locally from
// the editor's current content.
func (s *Session) ExportMarkdown(w io.Writer) error {
	_, err := io.WriteString(w, editor.ExportMarkdown(s.title, s.editor.HTML()))
	return err
}

func (s *Session) scheduleSave() {
	s.saver.Change(s.title, s.editor.HTML())
}
