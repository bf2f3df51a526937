package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalogue product as stored in the products collection.
type Product struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Sizes     []Size             `json:"sizes" bson:"sizes"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Size represents a single size variant and its stock level.
type Size struct {
	Size  string `json:"size" bson:"size"`
	Stock int    `json:"stock" bson:"stock"`
}

// ProductRequest represents the request payload for creating a product.
type ProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Sizes []Size  `json:"sizes"`
}

// ProductSummary is the listing projection of a product. Sizes are
// filterable but intentionally absent from listing output.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductFilter holds the optional listing criteria for products. Zero
// values mean the criterion is absent.
type ProductFilter struct {
	Name string
	Size string
}

// ProductListResponse is the paginated product listing payload.
type ProductListResponse struct {
	Data []ProductSummary `json:"data"`
	Page Page             `json:"page"`
}

// CreatedResponse carries the store-assigned identifier of a new record.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Summary projects a stored product to its listing shape.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:    p.ID.Hex(),
		Name:  p.Name,
		Price: p.Price,
	}
}
