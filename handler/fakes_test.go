package handler

import (
	"context"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Swapnil-DevGeek/note-taker/middleware"
	"github.com/Swapnil-DevGeek/note-taker/model"
	"github.com/Swapnil-DevGeek/note-taker/usecase"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	utils.InitValidator()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeUsersRepo keeps users in memory, keyed by email like the unique
// index on the real collection.
type fakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]*model.User{}}
}

func (r *fakeUsersRepo) AddUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[email], nil
}

// fakeNotesRepo mimics the Mongo-backed repository: notes keyed by hex
// id, lookups owner-scoped, unknown or malformed ids surface as
// not-found. Timestamps come from a strictly increasing clock so sort
// order is deterministic.
type fakeNotesRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
	base  time.Time
	ticks int
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{
		notes: map[string]*model.Note{},
		base:  time.Now(),
	}
}

func (r *fakeNotesRepo) nextTime() time.Time {
	r.ticks++
	return r.base.Add(time.Duration(r.ticks) * time.Second)
}

func (r *fakeNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = primitive.NewObjectID()
	now := r.nextTime()
	note.CreatedAt = now
	note.UpdatedAt = now

	stored := *note
	r.notes[note.ID.Hex()] = &stored
	return nil
}

func (r *fakeNotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			copied := *n
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *fakeNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, usecase.ErrNoteNotFound
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotesRepo) UpdateNote(ctx context.Context, noteID, userID, title, content string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, usecase.ErrNoteNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = r.nextTime()
	copied := *n
	return &copied, nil
}

func (r *fakeNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.UserID != userID {
		return usecase.ErrNoteNotFound
	}
	delete(r.notes, noteID)
	return nil
}

// newTestRouter wires the API exactly like the production router,
// minus the observability middleware.
func newTestRouter() *gin.Engine {
	userService := &usecase.UserService{UsersRepo: newFakeUsersRepo()}
	notesService := &usecase.NotesService{NotesRepo: newFakeNotesRepo()}

	router := gin.New()

	api := router.Group("/api")
	{
		api.POST("/register", func(c *gin.Context) {
			RegistrationHandler(c, userService)
		})
		api.POST("/login", func(c *gin.Context) {
			LoginHandler(c, userService)
		})
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/user", func(c *gin.Context) {
			GetUserHandler(c, userService)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				ListNotesHandler(c, userService, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				CreateNoteHandler(c, userService, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				GetNoteHandler(c, userService, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				UpdateNoteHandler(c, userService, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				DeleteNoteHandler(c, userService, notesService)
			})
			notes.GET("/:id/export", func(c *gin.Context) {
				ExportNoteHandler(c, userService, notesService)
			})
		}
	}

	return router
}
