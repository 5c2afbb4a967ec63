package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Segment represents a saved audience definition. AudienceSize is the number
// of customers that matched the rule sequence when the segment was last saved.
type Segment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Rules        []Rule             `bson:"rules" json:"rules"`
	AudienceSize int                `bson:"audienceSize" json:"audienceSize"`
	CreatedBy    string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
