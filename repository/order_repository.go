package repository

import (
	"context"
	"time"

	"ticketing-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByEventAndBuyer(ctx context.Context, eventID, buyerID string) (*models.Order, error)
	FindByEvent(ctx context.Context, eventID, search string, skip, limit int) ([]models.OrderWithBuyer, int64, error)
	FindByBuyer(ctx context.Context, buyerID string, skip, limit int) ([]models.Order, int64, error)
}

// MongoOrderRepository implements OrderRepository on the orders collection
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create inserts a new order document. No uniqueness is enforced on
// (event, buyer): a second order for the same pair inserts normally.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// FindByEventAndBuyer returns the first order for (event, buyer), or nil
// when none exists.
func (r *MongoOrderRepository) FindByEventAndBuyer(ctx context.Context, eventID, buyerID string) (*models.Order, error) {
	eventOID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, err
	}
	buyerOID, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = r.collection.FindOne(ctx, bson.M{"event": eventOID, "buyer": buyerOID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByEvent joins orders with their buyer and event documents, filters by
// event and a case-insensitive match on the buyer's full name, and returns a
// newest-first page plus the total match count.
func (r *MongoOrderRepository) FindByEvent(ctx context.Context, eventID, search string, skip, limit int) ([]models.OrderWithBuyer, int64, error) {
	eventOID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, 0, err
	}

	base := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "buyer"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "buyer"},
		}}},
		bson.D{{Key: "$unwind", Value: "$buyer"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "events"},
			{Key: "localField", Value: "event"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "event"},
		}}},
		bson.D{{Key: "$unwind", Value: "$event"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "total_amount", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "event_title", Value: "$event.title"},
			{Key: "event_id", Value: "$event._id"},
			{Key: "buyer", Value: bson.D{{Key: "$concat", Value: bson.A{"$buyer.first_name", " ", "$buyer.last_name"}}}},
		}}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "event_id", Value: eventOID},
			{Key: "buyer", Value: primitive.Regex{Pattern: search, Options: "i"}},
		}}},
	}

	countPipeline := append(append(mongo.Pipeline{}, base...), bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := r.collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	var counts []struct {
		Total int64 `bson:"total"`
	}
	if err := countCursor.All(ctx, &counts); err != nil {
		return nil, 0, err
	}
	var total int64
	if len(counts) > 0 {
		total = counts[0].Total
	}

	pipeline := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: int64(skip)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orders []models.OrderWithBuyer
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindByBuyer returns a newest-first page of a buyer's orders plus the total
// count for page computation.
func (r *MongoOrderRepository) FindByBuyer(ctx context.Context, buyerID string, skip, limit int) ([]models.Order, int64, error) {
	buyerOID, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return nil, 0, err
	}

	filter := bson.M{"buyer": buyerOID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
