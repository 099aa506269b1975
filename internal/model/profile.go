package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile represents a user's dating profile. Owner references the User that
// the profile belongs to; at most one profile exists per owner.
type Profile struct {
	ID        bson.ObjectID `bson:"_id,omitempty"        json:"id"`
	Owner     bson.ObjectID `bson:"owner"                json:"owner"`
	FirstName string        `bson:"first_name,omitempty" json:"firstName,omitempty"`
	Age       int           `bson:"age,omitempty"        json:"age,omitempty"`
	Gender    string        `bson:"gender,omitempty"     json:"gender,omitempty"`
	Languages string        `bson:"languages,omitempty"  json:"languages,omitempty"`
	Culture   string        `bson:"culture,omitempty"    json:"culture,omitempty"`
	Interests string        `bson:"interests,omitempty"  json:"interests,omitempty"`
	CreatedAt time.Time     `bson:"created_at"           json:"createdAt"`
}
