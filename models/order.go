package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderIntent describes a prospective purchase before payment confirmation.
// It lives in memory for the duration of one checkout call.
type OrderIntent struct {
	EventTitle string `json:"eventTitle"`
	EventID    string `json:"eventId"`
	Price      string `json:"price"`
	IsFree     bool   `json:"isFree"`
	BuyerID    string `json:"buyerId"`
}

// Order is the persisted confirmation of a completed purchase. There is no
// uniqueness constraint on (event, buyer); duplicates are accepted.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Event       primitive.ObjectID `bson:"event" json:"event"`
	Buyer       primitive.ObjectID `bson:"buyer" json:"buyer"`
	TotalAmount string             `bson:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// OrderWithBuyer is the projection produced by the event-orders aggregation:
// the order joined with its event title and the buyer's full name.
type OrderWithBuyer struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	TotalAmount string             `bson:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	EventTitle  string             `bson:"event_title" json:"eventTitle"`
	EventID     primitive.ObjectID `bson:"event_id" json:"eventId"`
	Buyer       string             `bson:"buyer" json:"buyer"`
}

// OrderPlacedEvent is published to Kafka after a successful checkout.
type OrderPlacedEvent struct {
	OrderID     string    `json:"order_id"`
	EventID     string    `json:"event_id"`
	BuyerID     string    `json:"buyer_id"`
	TotalAmount string    `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
