package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is owned by exactly one user. Content is the editor's
// serialized markup and is stored opaquely.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
