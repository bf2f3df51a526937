package repository

import (
	"context"

	"catalog-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Insert stores a new product and returns its store-assigned identifier.
	Insert(ctx context.Context, product *model.Product) (string, error)

	// Find retrieves products matching the filter in the store's natural
	// order, skipping offset records and returning at most limit.
	Find(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error)

	// FindByID retrieves a single product by its hex identifier. It returns
	// nil without error when the product does not exist or the identifier
	// is malformed.
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// FindByIDs retrieves multiple products in a single query, keyed by the
	// identifiers exactly as given. Malformed identifiers are skipped, so
	// they resolve the same as absent products; non-canonical spellings of
	// valid identifiers resolve under the caller's spelling.
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Insert stores a new order and returns its store-assigned identifier.
	Insert(ctx context.Context, order *model.Order) (string, error)

	// FindByUser retrieves a user's orders in the store's natural order,
	// skipping offset records and returning at most limit.
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error)
}
