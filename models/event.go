package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a ticketed event. Price is kept as a decimal string; the
// checkout layer converts it to minor currency units.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	StartDateTime time.Time          `bson:"start_date_time" json:"startDateTime"`
	EndDateTime   time.Time          `bson:"end_date_time" json:"endDateTime"`
	Price         string             `bson:"price" json:"price"`
	IsFree        bool               `bson:"is_free" json:"isFree"`
	URL           string             `bson:"url,omitempty" json:"url,omitempty"`
	Organizer     primitive.ObjectID `bson:"organizer,omitempty" json:"organizer,omitempty"`
}

// User is the buyer-facing slice of the users collection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
}
