package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SegmentRepository implements the repositories.SegmentRepository interface
type SegmentRepository struct {
	collection *mongo.Collection
}

// NewSegmentRepository creates a new SegmentRepository
func NewSegmentRepository(db *mongo.Database) repositories.SegmentRepository {
	return &SegmentRepository{
		collection: db.Collection("segments"),
	}
}

// Create creates a new segment
func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) error {
	segment.CreatedAt = time.Now()
	segment.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, segment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		segment.ID = oid
	}
	return nil
}

// FindByID finds a segment by ID
func (r *SegmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	var segment models.Segment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&segment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &segment, nil
}

// FindPage finds segments sorted by creation date with pagination
func (r *SegmentRepository) FindPage(ctx context.Context, page, limit int) ([]*models.Segment, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})
	return r.find(ctx, bson.M{}, opts)
}

// FindTopByAudienceSize finds the largest segments by audience size
func (r *SegmentRepository) FindTopByAudienceSize(ctx context.Context, limit int) ([]*models.Segment, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.M{"audienceSize": -1})
	return r.find(ctx, bson.M{}, opts)
}

func (r *SegmentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Segment, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var segments []*models.Segment
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, err
	}
	if segments == nil {
		segments = []*models.Segment{}
	}
	return segments, nil
}

// Update replaces a segment document
func (r *SegmentRepository) Update(ctx context.Context, segment *models.Segment) error {
	segment.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": segment.ID}, segment)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete deletes a segment
func (r *SegmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Count counts all segments
func (r *SegmentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
