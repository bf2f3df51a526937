// Command seed populates the catalogue with sample products and a few
// orders, for local development against a running MongoDB instance.
//
// Usage:
//
//	MONGO_URI=mongodb://localhost:27017 go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Database.Database)
	productRepo := repository.NewProductRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)

	products := []model.Product{
		{Name: "Running Shoes", Price: 89.99, Sizes: []model.Size{{Size: "M", Stock: 10}, {Size: "L", Stock: 6}}, CreatedAt: time.Now()},
		{Name: "Walking Shoes", Price: 59.99, Sizes: []model.Size{{Size: "M", Stock: 8}}, CreatedAt: time.Now()},
		{Name: "Leather Boots", Price: 120.00, Sizes: []model.Size{{Size: "XL", Stock: 2}}, CreatedAt: time.Now()},
		{Name: "Flip Flops", Price: 9.99, Sizes: []model.Size{{Size: "S", Stock: 30}}, CreatedAt: time.Now()},
	}

	var ids []string
	for i := range products {
		id, err := productRepo.Insert(ctx, &products[i])
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", products[i].Name, err)
		}
		logger.Info().Str("product_id", id).Str("name", products[i].Name).Msg("seeded product")
		ids = append(ids, id)
	}

	orders := []model.Order{
		{UserID: "u1", Items: []model.OrderItem{{ProductID: ids[0], Qty: 2}}, CreatedAt: time.Now()},
		{UserID: "u1", Items: []model.OrderItem{{ProductID: ids[1], Qty: 1}, {ProductID: ids[3], Qty: 3}}, CreatedAt: time.Now()},
		{UserID: "u2", Items: []model.OrderItem{{ProductID: ids[2], Qty: 1}}, CreatedAt: time.Now()},
	}

	for i := range orders {
		id, err := orderRepo.Insert(ctx, &orders[i])
		if err != nil {
			return fmt.Errorf("failed to seed order for %q: %w", orders[i].UserID, err)
		}
		logger.Info().Str("order_id", id).Str("user_id", orders[i].UserID).Msg("seeded order")
	}

	return nil
}
