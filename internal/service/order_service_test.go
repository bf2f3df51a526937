package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *model.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func TestOrderService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *model.OrderRequest
		insertID    string
		insertErr   error
		expectError error
		expectStore bool
	}{
		{
			name: "Success",
			req: &model.OrderRequest{
				UserID: "u1",
				Items:  []model.OrderItem{{ProductID: "68b1c2d3e4f5a6b7c8d9e0f1", Qty: 2}},
			},
			insertID:    "68b1c2d3e4f5a6b7c8d9e0aa",
			expectStore: true,
		},
		{
			name: "Dangling product reference accepted at write time",
			req: &model.OrderRequest{
				UserID: "u1",
				Items:  []model.OrderItem{{ProductID: "no-such-product", Qty: 1}},
			},
			insertID:    "68b1c2d3e4f5a6b7c8d9e0ab",
			expectStore: true,
		},
		{
			name:        "Missing user rejected",
			req:         &model.OrderRequest{Items: []model.OrderItem{{ProductID: "p", Qty: 1}}},
			expectError: model.ErrInvalidUser,
		},
		{
			name:        "Empty items rejected",
			req:         &model.OrderRequest{UserID: "u1"},
			expectError: model.ErrEmptyOrder,
		},
		{
			name: "Empty product ID rejected",
			req: &model.OrderRequest{
				UserID: "u1",
				Items:  []model.OrderItem{{ProductID: "", Qty: 1}},
			},
			expectError: model.ErrInvalidProduct,
		},
		{
			name: "Zero quantity rejected",
			req: &model.OrderRequest{
				UserID: "u1",
				Items:  []model.OrderItem{{ProductID: "p", Qty: 0}},
			},
			expectError: model.ErrInvalidQuantity,
		},
		{
			name: "Repository error propagates",
			req: &model.OrderRequest{
				UserID: "u1",
				Items:  []model.OrderItem{{ProductID: "p", Qty: 1}},
			},
			insertErr:   errors.New("store unavailable"),
			expectError: errors.New("store unavailable"),
			expectStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)
			service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

			if tt.expectStore {
				mockOrderRepo.On("Insert", ctx, mock.MatchedBy(func(o *model.Order) bool {
					return o.UserID == tt.req.UserID && len(o.Items) == len(tt.req.Items) && !o.CreatedAt.IsZero()
				})).Return(tt.insertID, tt.insertErr)
			}

			id, err := service.Create(ctx, tt.req)

			if tt.expectError != nil {
				require.Error(t, err)
				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.insertID, id)
			}

			mockOrderRepo.AssertExpectations(t)
			mockProductRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListByUser(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	shoesID := primitive.NewObjectID()
	socksID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	shoes := model.Product{ID: shoesID, Name: "Running Shoes", Price: 89.99}
	socks := model.Product{ID: socksID, Name: "Socks", Price: 4.50}

	t.Run("Enriches items and computes total from current prices", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		orders := []model.Order{{
			ID:     orderID,
			UserID: "u1",
			Items: []model.OrderItem{
				{ProductID: shoesID.Hex(), Qty: 2},
				{ProductID: socksID.Hex(), Qty: 3},
			},
		}}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{shoesID.Hex(), socksID.Hex()}).
			Return(map[string]model.Product{shoesID.Hex(): shoes, socksID.Hex(): socks}, nil)

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.NoError(t, err)

		require.Len(t, response.Data, 1)
		order := response.Data[0]
		assert.Equal(t, orderID.Hex(), order.ID)

		require.Len(t, order.Items, 2)
		assert.Equal(t, model.ProductDetails{ID: shoesID.Hex(), Name: "Running Shoes"}, order.Items[0].ProductDetails)
		assert.Equal(t, 2, order.Items[0].Qty)
		assert.Equal(t, model.ProductDetails{ID: socksID.Hex(), Name: "Socks"}, order.Items[1].ProductDetails)
		assert.Equal(t, 3, order.Items[1].Qty)

		// 2 x 89.99 + 3 x 4.50
		assert.Equal(t, 193.48, order.Total)
		assert.Equal(t, model.Page{Next: 10, Limit: 1, Previous: 0}, response.Page)

		mockOrderRepo.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Single item total matches read-time price", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		orders := []model.Order{{
			ID:     orderID,
			UserID: "u1",
			Items:  []model.OrderItem{{ProductID: shoesID.Hex(), Qty: 2}},
		}}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{shoesID.Hex()}).
			Return(map[string]model.Product{shoesID.Hex(): shoes}, nil)

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.NoError(t, err)

		require.Len(t, response.Data, 1)
		assert.Equal(t, 179.98, response.Data[0].Total)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Missing product yields empty details and zero contribution", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		orders := []model.Order{{
			ID:     orderID,
			UserID: "u1",
			Items: []model.OrderItem{
				{ProductID: "dangling-reference", Qty: 5},
				{ProductID: shoesID.Hex(), Qty: 1},
			},
		}}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{"dangling-reference", shoesID.Hex()}).
			Return(map[string]model.Product{shoesID.Hex(): shoes}, nil)

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.NoError(t, err)

		require.Len(t, response.Data, 1)
		order := response.Data[0]

		// Item order preserved: the dangling item first, resolved as empty.
		require.Len(t, order.Items, 2)
		assert.Equal(t, model.ProductDetails{}, order.Items[0].ProductDetails)
		assert.Equal(t, 5, order.Items[0].Qty)
		assert.Equal(t, model.ProductDetails{ID: shoesID.Hex(), Name: "Running Shoes"}, order.Items[1].ProductDetails)

		// Only the resolved item contributes.
		assert.Equal(t, 89.99, order.Total)

		mockOrderRepo.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Items resolve under the reference as stored", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		// The repository keys its result map by the identifiers exactly as
		// requested, even when their spelling is not the canonical lowercase
		// hex. Enrichment must resolve such an item, not report it missing.
		storedRef := strings.ToUpper(shoesID.Hex())
		orders := []model.Order{{
			ID:     orderID,
			UserID: "u1",
			Items:  []model.OrderItem{{ProductID: storedRef, Qty: 2}},
		}}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{storedRef}).
			Return(map[string]model.Product{storedRef: shoes}, nil)

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.NoError(t, err)

		require.Len(t, response.Data, 1)
		order := response.Data[0]
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Running Shoes", order.Items[0].ProductDetails.Name)
		assert.Equal(t, 179.98, order.Total)

		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Duplicate references are looked up once", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		orders := []model.Order{
			{ID: orderID, UserID: "u1", Items: []model.OrderItem{{ProductID: shoesID.Hex(), Qty: 1}}},
			{ID: primitive.NewObjectID(), UserID: "u1", Items: []model.OrderItem{{ProductID: shoesID.Hex(), Qty: 2}}},
		}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{shoesID.Hex()}).
			Return(map[string]model.Product{shoesID.Hex(): shoes}, nil)

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.NoError(t, err)

		require.Len(t, response.Data, 2)
		assert.Equal(t, 89.99, response.Data[0].Total)
		assert.Equal(t, 179.98, response.Data[1].Total)

		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Total rounds half up to two decimal places", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		fractional := model.Product{ID: socksID, Name: "Laces", Price: 0.005}
		orders := []model.Order{{
			ID:     orderID,
			UserID: "u1",
			Items:  []model.OrderItem{{ProductID: socksID.Hex(), Qty: 1}},
		}}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{socksID.Hex()}).
			Return(map[string]model.Product{socksID.Hex(): fractional}, nil)

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.NoError(t, err)

		require.Len(t, response.Data, 1)
		assert.Equal(t, 0.01, response.Data[0].Total)
	})

	t.Run("Empty page keeps pagination contract", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		mockOrderRepo.On("FindByUser", ctx, "u2", 10, 30).Return([]model.Order{}, nil)
		mockProductRepo.On("FindByIDs", ctx, mock.Anything).Return(map[string]model.Product{}, nil)

		response, err := service.ListByUser(ctx, "u2", 10, 30)
		require.NoError(t, err)

		assert.Empty(t, response.Data)
		assert.Equal(t, model.Page{Next: 40, Limit: 0, Previous: 20}, response.Page)
	})

	t.Run("Order store error propagates", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(nil, errors.New("store unavailable"))

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.Error(t, err)
		assert.Nil(t, response)
	})

	t.Run("Product store error propagates", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

		orders := []model.Order{{
			ID:     orderID,
			UserID: "u1",
			Items:  []model.OrderItem{{ProductID: shoesID.Hex(), Qty: 1}},
		}}

		mockOrderRepo.On("FindByUser", ctx, "u1", 10, 0).Return(orders, nil)
		mockProductRepo.On("FindByIDs", ctx, []string{shoesID.Hex()}).
			Return(nil, errors.New("store unavailable"))

		response, err := service.ListByUser(ctx, "u1", 10, 0)
		require.Error(t, err)
		assert.Nil(t, response)
	})
}
