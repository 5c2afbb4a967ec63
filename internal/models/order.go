package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a customer order
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID string             `bson:"customerId" json:"customerId"`
	Amount     float64            `bson:"amount" json:"amount"`
	Date       string             `bson:"date" json:"date"` // DateLayout
	Status     string             `bson:"status" json:"status"`
	Items      []string           `bson:"items" json:"items"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
