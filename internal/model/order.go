package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a customer order as stored in the orders collection.
type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Items     []OrderItem        `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// OrderItem represents a line item in a stored order. ProductID is a weak
// reference into the products collection; it is kept as plain text and is
// not guaranteed to resolve at read time.
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Qty       int    `json:"qty" bson:"qty"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	UserID string      `json:"userId"`
	Items  []OrderItem `json:"items"`
}

// ProductDetails is the enriched view of a resolved line item. An
// unresolved reference serialises as an empty object, never as null.
type ProductDetails struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// OrderItemView is a line item as returned by the order listing.
type OrderItemView struct {
	ProductDetails ProductDetails `json:"productDetails"`
	Qty            int            `json:"qty"`
}

// OrderView is an enriched order as returned by the order listing. Total is
// computed from current product prices at read time, not snapshotted at
// order creation.
type OrderView struct {
	ID    string          `json:"id"`
	Items []OrderItemView `json:"items"`
	Total float64         `json:"total"`
}

// OrderListResponse is the paginated order listing payload.
type OrderListResponse struct {
	Data []OrderView `json:"data"`
	Page Page        `json:"page"`
}
