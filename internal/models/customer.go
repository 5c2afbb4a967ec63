package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format for date-only fields such as LastVisit.
const DateLayout = "2006-01-02"

// Customer represents a customer record
type Customer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"` // unique
	Phone         string             `bson:"phone" json:"phone"`
	TotalSpent    float64            `bson:"totalSpent" json:"totalSpent"`
	Visits        int                `bson:"visits" json:"visits"`
	LastVisit     string             `bson:"lastVisit" json:"lastVisit"` // DateLayout
	Orders        int                `bson:"orders" json:"orders"`
	AvgOrderValue float64            `bson:"avgOrderValue" json:"avgOrderValue"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
