package repository

import (
	"context"

	"ticketing-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository defines the read access the checkout flow needs
type EventRepository interface {
	FindByID(ctx context.Context, id string) (*models.Event, error)
}

type MongoEventRepository struct {
	collection *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) EventRepository {
	return &MongoEventRepository{
		collection: db.Collection("events"),
	}
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var event models.Event
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}
