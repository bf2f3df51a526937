package repository

import (
	"context"
	"fmt"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the OrderRepository interface using MongoDB.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection("orders"),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Insert stores a new order and returns its store-assigned identifier.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) (string, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", order.UserID).Msg("failed to insert order")
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	r.logger.Debug().
		Str("order_id", id.Hex()).
		Str("user_id", order.UserID).
		Int("item_count", len(order.Items)).
		Msg("order inserted")

	return id.Hex(), nil
}

// FindByUser retrieves a user's orders in the store's natural order.
func (r *orderRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to decode order documents")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
