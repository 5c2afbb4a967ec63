package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delivery statuses reported by the vendor gateway
const (
	DeliveryStatusSent   = "SENT"
	DeliveryStatusFailed = "FAILED"
)

// CommunicationLog records the outcome of one delivery attempt. Entries are
// keyed by (CampaignID, CustomerID) so receipt replays update in place.
type CommunicationLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignID  string             `bson:"campaignId" json:"campaignId"`
	CustomerID  string             `bson:"customerId" json:"customerId"`
	Status      string             `bson:"status" json:"status"` // SENT, FAILED
	MessageID   string             `bson:"messageId,omitempty" json:"messageId,omitempty"`
	DeliveredAt time.Time          `bson:"deliveredAt" json:"deliveredAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
