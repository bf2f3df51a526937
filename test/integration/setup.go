package integration

import (
	"context"
	"testing"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
	URI       string
}

// SetupTestDB creates a MongoDB test container and a connected client.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create MongoDB container
	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	// Get connection string
	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		URI:            uri,
		Database:       "catalog_test",
		MaxPoolSize:    10,
		MinPoolSize:    0,
		ConnectTimeout: 30,
	}

	logger := zerolog.Nop()
	client, err := database.Connect(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			t.Logf("failed to disconnect client: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: mongoContainer,
		Client:    client,
		DB:        client.Database(dbConfig.Database),
		URI:       uri,
	}
}

// SeedProducts inserts test product data and returns the assigned hex
// identifiers in insertion order.
func SeedProducts(t *testing.T, db *mongo.Database) []string {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{Name: "Running Shoes", Price: 89.99, Sizes: []model.Size{{Size: "M", Stock: 10}}, CreatedAt: time.Now()},
		{Name: "Walking Shoes", Price: 59.99, Sizes: []model.Size{{Size: "L", Stock: 5}}, CreatedAt: time.Now()},
		{Name: "Leather Boots", Price: 120.00, Sizes: []model.Size{{Size: "M", Stock: 2}, {Size: "XL", Stock: 1}}, CreatedAt: time.Now()},
		{Name: "Flip Flops", Price: 9.99, Sizes: []model.Size{{Size: "S", Stock: 30}}, CreatedAt: time.Now()},
		{Name: "Gift Card", Price: 25.00, CreatedAt: time.Now()},
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		result, err := db.Collection("products").InsertOne(ctx, p)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
		ids = append(ids, result.InsertedID.(primitive.ObjectID).Hex())
	}

	return ids
}

// CleanupDB removes all data from the test collections.
func CleanupDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	for _, collection := range []string{"products", "orders"} {
		if _, err := db.Collection(collection).DeleteMany(ctx, bson.M{}); err != nil {
			t.Logf("failed to clean collection %s: %v", collection, err)
		}
	}
}
