package service

import (
	"context"

	"catalog-api/internal/model"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// Create validates and stores a new product, returning its identifier.
	Create(ctx context.Context, req *model.ProductRequest) (string, error)

	// List retrieves a filtered, paginated page of product summaries.
	List(ctx context.Context, filter model.ProductFilter, limit, offset int) (*model.ProductListResponse, error)

	// GetByID retrieves a single product with its full detail.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create validates and stores a new order, returning its identifier.
	Create(ctx context.Context, req *model.OrderRequest) (string, error)

	// ListByUser retrieves a paginated page of a user's orders, enriched
	// with current product details and computed totals.
	ListByUser(ctx context.Context, userID string, limit, offset int) (*model.OrderListResponse, error)
}
