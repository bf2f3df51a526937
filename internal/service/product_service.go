package service

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and stores a new product, returning its identifier.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (string, error) {
	if err := s.validateProductRequest(req); err != nil {
		return "", err
	}

	product := &model.Product{
		Name:      req.Name,
		Price:     req.Price,
		Sizes:     req.Sizes,
		CreatedAt: time.Now(),
	}

	id, err := s.productRepo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", id).
		Str("name", req.Name).
		Msg("product created")

	return id, nil
}

// List retrieves a filtered, paginated page of product summaries. Sizes are
// used for filtering only and never appear in the listing output.
func (s *productService) List(ctx context.Context, filter model.ProductFilter, limit, offset int) (*model.ProductListResponse, error) {
	products, err := s.productRepo.Find(ctx, filter, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	data := make([]model.ProductSummary, 0, len(products))
	for i := range products {
		data = append(data, products[i].Summary())
	}

	s.logger.Debug().
		Int("count", len(data)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return &model.ProductListResponse{
		Data: data,
		Page: model.NewPage(offset, limit, len(data)),
	}, nil
}

// GetByID retrieves a single product with its full detail.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// validateProductRequest validates the product request.
func (s *productService) validateProductRequest(req *model.ProductRequest) error {
	if req == nil || req.Name == "" {
		return model.ErrInvalidName
	}

	if req.Price < 0 {
		return model.ErrInvalidPrice
	}

	for _, size := range req.Sizes {
		if size.Size == "" {
			return model.ErrInvalidSize
		}
		if size.Stock < 0 {
			return model.ErrInvalidStock
		}
	}

	return nil
}
