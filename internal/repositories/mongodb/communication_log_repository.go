package mongodb

import (
	"context"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommunicationLogRepository implements the repositories.CommunicationLogRepository interface
type CommunicationLogRepository struct {
	collection *mongo.Collection
}

// NewCommunicationLogRepository creates a new CommunicationLogRepository
func NewCommunicationLogRepository(db *mongo.Database) repositories.CommunicationLogRepository {
	return &CommunicationLogRepository{
		collection: db.Collection("communication_logs"),
	}
}

// CreateMany inserts one log entry per delivery attempt
func (r *CommunicationLogRepository) CreateMany(ctx context.Context, logs []*models.CommunicationLog) error {
	if len(logs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(logs))
	now := time.Now()
	for _, l := range logs {
		l.CreatedAt = now
		docs = append(docs, l)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Upsert updates the log entry keyed by (campaignId, customerId), creating it
// if missing. Receipt replays are therefore idempotent.
func (r *CommunicationLogRepository) Upsert(ctx context.Context, log *models.CommunicationLog) error {
	filter := bson.M{"campaignId": log.CampaignID, "customerId": log.CustomerID}
	update := bson.M{
		"$set": bson.M{
			"status":      log.Status,
			"deliveredAt": log.DeliveredAt,
		},
		"$setOnInsert": bson.M{
			"campaignId": log.CampaignID,
			"customerId": log.CustomerID,
			"createdAt":  time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindByCampaignID finds log entries for a campaign with pagination
func (r *CommunicationLogRepository) FindByCampaignID(ctx context.Context, campaignID string, page, limit int) ([]*models.CommunicationLog, error) {
	filter := bson.M{}
	if campaignID != "" {
		filter["campaignId"] = campaignID
	}
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*models.CommunicationLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*models.CommunicationLog{}
	}
	return logs, nil
}

// CountByCampaignID counts log entries for a campaign
func (r *CommunicationLogRepository) CountByCampaignID(ctx context.Context, campaignID string) (int64, error) {
	filter := bson.M{}
	if campaignID != "" {
		filter["campaignId"] = campaignID
	}
	return r.collection.CountDocuments(ctx, filter)
}
