package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swapnil-DevGeek/note-taker/dto"
	"github.com/Swapnil-DevGeek/note-taker/model"
	"github.com/Swapnil-DevGeek/note-taker/services"
)

type memUsersRepo struct {
	users map[string]*model.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{users: map[string]*model.User{}}
}

func (r *memUsersRepo) AddUser(ctx context.Context, user *model.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *memUsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.users[email], nil
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := &UserService{UsersRepo: newMemUsersRepo()}

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "enginepass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "enginepass", user.Password)
	assert.True(t, services.VerifyPassword(user.Password, "enginepass"))
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &UserService{UsersRepo: newMemUsersRepo()}
	req := dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "enginepass",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	svc := &UserService{UsersRepo: newMemUsersRepo()}
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "enginepass",
	})
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "ada@example.com", "enginepass")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.Authenticate(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "enginepass")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

type memNotesRepo struct {
	created []*model.Note
}

func (r *memNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	r.created = append(r.created, note)
	return nil
}

func (r *memNotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return r.created, nil
}

func (r *memNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return nil, ErrNoteNotFound
}

func (r *memNotesRepo) UpdateNote(ctx context.Context, noteID, userID, title, content string) (*model.Note, error) {
	return nil, ErrNoteNotFound
}

func (r *memNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	return ErrNoteNotFound
}

func TestCreateNoteDefaultsTitle(t *testing.T) {
	repo := &memNotesRepo{}
	svc := &NotesService{NotesRepo: repo}

	note, err := svc.CreateNote(context.Background(), "user-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", note.Title)
	assert.Equal(t, "", note.Content)
	assert.Equal(t, "user-1", note.UserID)

	note, err = svc.CreateNote(context.Background(), "user-1", "Kept", "<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, "Kept", note.Title)
	require.Len(t, repo.created, 2)
}
