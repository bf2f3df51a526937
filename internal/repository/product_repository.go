package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements the ProductRepository interface using MongoDB.
type productRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewProductRepository creates a new MongoDB-backed product repository.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		collection: db.Collection("products"),
		logger:     logger.With().Str("repository", "product").Logger(),
	}
}

// Insert stores a new product and returns its store-assigned identifier.
func (r *productRepository) Insert(ctx context.Context, product *model.Product) (string, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	r.logger.Debug().Str("product_id", id.Hex()).Msg("product inserted")

	return id.Hex(), nil
}

// Find retrieves products matching the filter in the store's natural order.
func (r *productRepository) Find(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode product documents")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a single product by its hex identifier. A malformed
// identifier is treated the same as an absent product.
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Debug().Str("product_id", id).Msg("malformed product identifier")
		return nil, nil
	}

	var product model.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &product, nil
}

// FindByIDs retrieves multiple products in a single query, keyed by the
// identifiers exactly as the caller gave them. Hex parsing accepts mixed
// case, so a non-canonical spelling of a valid identifier still resolves,
// the same as a one-at-a-time FindByID would. Malformed identifiers are
// skipped.
func (r *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	products := make(map[string]model.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	inputsByHex := make(map[string][]string, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			r.logger.Debug().Str("product_id", id).Msg("skipping malformed product identifier")
			continue
		}
		hex := objectID.Hex()
		if _, ok := inputsByHex[hex]; !ok {
			objectIDs = append(objectIDs, objectID)
		}
		inputsByHex[hex] = append(inputsByHex[hex], id)
	}

	if len(objectIDs) == 0 {
		return products, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(objectIDs)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var product model.Product
		if err := cursor.Decode(&product); err != nil {
			r.logger.Error().Err(err).Msg("failed to decode product document")
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		for _, id := range inputsByHex[product.ID.Hex()] {
			products[id] = product
		}
	}

	if err := cursor.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product documents")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
