package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Swapnil-DevGeek/note-taker/model"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// ErrNoteNotFound covers both a missing note and a note owned by
// someone else; callers cannot tell the two apart.
var ErrNoteNotFound = errors.New("note not found")

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// CreateNote inserts a new note and fills in its generated fields.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}
	return nil
}

// GetUserNotes retrieves all notes for a user, most recently updated
// first.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves a single note scoped to its owner.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, ErrNoteNotFound
	}

	var note model.Note
	err = r.MongoCollection.FindOne(ctx,
		bson.M{"_id": oid, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote sets title and content and returns the updated document.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID, title, content string) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, ErrNoteNotFound
	}

	filter := bson.M{"_id": oid, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err = r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes a note scoped to its owner.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return ErrNoteNotFound
	}

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}
	return nil
}
