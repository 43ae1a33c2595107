package model

import "time"

// User is created at registration and only ever read afterwards.
// The JSON shape mirrors the API contract: register and login return
// the stored record verbatim, password hash included.
type User struct {
	UserID    string    `bson:"user_id" json:"id"`
	FirstName string    `bson:"first_name" json:"first_name"`
	LastName  string    `bson:"last_name" json:"last_name"`
	Email     string    `bson:"email" json:"email"` // unique
	Password  string    `bson:"password" json:"password"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
