package services

import (
	"context"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"github.com/mini-crm/crm-backend/internal/segments"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SegmentService handles segment authoring and audience evaluation
type SegmentService struct {
	segmentRepo  repositories.SegmentRepository
	customerRepo repositories.CustomerRepository
}

// NewSegmentService creates a new SegmentService
func NewSegmentService(segmentRepo repositories.SegmentRepository, customerRepo repositories.CustomerRepository) *SegmentService {
	return &SegmentService{
		segmentRepo:  segmentRepo,
		customerRepo: customerRepo,
	}
}

// PreviewAudience evaluates a rule sequence against the customer collection
// and returns the matching audience size
func (s *SegmentService) PreviewAudience(ctx context.Context, rules []models.Rule) (int, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(segments.Filter(rules, customers, time.Now())), nil
}

// CreateSegment stores a segment with its audience size evaluated at save time
func (s *SegmentService) CreateSegment(ctx context.Context, segment *models.Segment) error {
	size, err := s.PreviewAudience(ctx, segment.Rules)
	if err != nil {
		return err
	}
	segment.AudienceSize = size
	return s.segmentRepo.Create(ctx, segment)
}

// GetSegmentByID retrieves a segment by ID
func (s *SegmentService) GetSegmentByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	return s.segmentRepo.FindByID(ctx, id)
}

// GetSegments retrieves segments with pagination plus the total count
func (s *SegmentService) GetSegments(ctx context.Context, page, limit int) ([]*models.Segment, int64, error) {
	segs, err := s.segmentRepo.FindPage(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.segmentRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return segs, total, nil
}

// UpdateSegment updates a segment and re-evaluates its audience size
func (s *SegmentService) UpdateSegment(ctx context.Context, segment *models.Segment) error {
	existing, err := s.segmentRepo.FindByID(ctx, segment.ID)
	if err != nil {
		return err
	}
	if segment.Name != "" {
		existing.Name = segment.Name
	}
	if segment.Rules != nil {
		existing.Rules = segment.Rules
	}
	size, err := s.PreviewAudience(ctx, existing.Rules)
	if err != nil {
		return err
	}
	existing.AudienceSize = size
	*segment = *existing
	return s.segmentRepo.Update(ctx, existing)
}

// DeleteSegment deletes a segment
func (s *SegmentService) DeleteSegment(ctx context.Context, id primitive.ObjectID) error {
	return s.segmentRepo.Delete(ctx, id)
}
