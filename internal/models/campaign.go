package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign statuses
const (
	CampaignStatusDraft   = "draft"
	CampaignStatusSending = "sending"
	CampaignStatusSent    = "sent"
	CampaignStatusFailed  = "failed"
)

// Campaign represents a bulk message campaign targeted at a rule-selected
// audience. Once the status reaches "sent", Sent+Failed equals AudienceSize.
type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Message      string             `bson:"message" json:"message"` // template with {name} placeholder
	Rules        []Rule             `bson:"rules" json:"rules"`
	AudienceSize int                `bson:"audienceSize" json:"audienceSize"`
	Status       string             `bson:"status" json:"status"` // draft, sending, sent, failed
	Sent         int                `bson:"sent" json:"sent"`
	Failed       int                `bson:"failed" json:"failed"`
	DeliveryRate float64            `bson:"deliveryRate" json:"deliveryRate"`
	Tags         []string           `bson:"tags" json:"tags"`
	CreatedBy    string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
