package service

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create validates and stores a new order, returning its identifier.
// Product references are not checked against the catalogue here; they are
// weak references resolved lazily at read time.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (string, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return "", err
	}

	order := &model.Order{
		UserID:    req.UserID,
		Items:     req.Items,
		CreatedAt: time.Now(),
	}

	id, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to create order")
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Str("user_id", req.UserID).
		Int("item_count", len(req.Items)).
		Msg("order created")

	return id, nil
}

// ListByUser retrieves a paginated page of a user's orders, enriched with
// current product details and computed totals.
func (s *orderService) ListByUser(ctx context.Context, userID string, limit, offset int) (*model.OrderListResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	// One batched lookup covers every product referenced anywhere in the
	// page, instead of one query per line item.
	products, err := s.productRepo.FindByIDs(ctx, referencedProductIDs(orders))
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to resolve product references")
		return nil, fmt.Errorf("failed to resolve product references: %w", err)
	}

	data := make([]model.OrderView, 0, len(orders))
	for i := range orders {
		data = append(data, s.enrichOrder(&orders[i], products))
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("count", len(data)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved orders")

	return &model.OrderListResponse{
		Data: data,
		Page: model.NewPage(offset, limit, len(data)),
	}, nil
}

// enrichOrder resolves each line item against the product map, preserving
// item order. An unresolved reference (deleted product, dangling or
// malformed identifier) yields empty product details and contributes
// nothing to the total; it never fails the order.
func (s *orderService) enrichOrder(order *model.Order, products map[string]model.Product) model.OrderView {
	items := make([]model.OrderItemView, 0, len(order.Items))
	total := decimal.Zero

	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			items = append(items, model.OrderItemView{Qty: item.Qty})
			continue
		}

		items = append(items, model.OrderItemView{
			ProductDetails: model.ProductDetails{
				ID:   product.ID.Hex(),
				Name: product.Name,
			},
			Qty: item.Qty,
		})

		total = total.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	// Totals round half up (away from zero) to 2 decimal places, computed
	// from prices at read time.
	return model.OrderView{
		ID:    order.ID.Hex(),
		Items: items,
		Total: total.Round(2).InexactFloat64(),
	}
}

// referencedProductIDs collects the distinct product identifiers referenced
// across a page of orders.
func referencedProductIDs(orders []model.Order) []string {
	seen := make(map[string]struct{})
	var ids []string

	for i := range orders {
		for _, item := range orders[i].Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	return ids
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || req.UserID == "" {
		return model.ErrInvalidUser
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range req.Items {
		if item.ProductID == "" {
			return model.ErrInvalidProduct
		}

		if item.Qty < 1 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("qty", item.Qty).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
