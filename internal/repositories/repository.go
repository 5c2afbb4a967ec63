package repositories

import (
	"context"

	"github.com/mini-crm/crm-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	FindPage(ctx context.Context, page, limit int) ([]*models.Campaign, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	UpdateDeliveryStats(ctx context.Context, id primitive.ObjectID, sent, failed, audienceSize int, deliveryRate float64, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	AverageDeliveryRate(ctx context.Context) (float64, error)
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindPage(ctx context.Context, search string, page, limit int) ([]*models.Customer, error)
	FindAll(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, search string) (int64, error)
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindPage(ctx context.Context, customerID string, page, limit int) ([]*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, customerID string) (int64, error)
}

// SegmentRepository defines the interface for segment data operations
type SegmentRepository interface {
	Create(ctx context.Context, segment *models.Segment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error)
	FindPage(ctx context.Context, page, limit int) ([]*models.Segment, error)
	FindTopByAudienceSize(ctx context.Context, limit int) ([]*models.Segment, error)
	Update(ctx context.Context, segment *models.Segment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// CommunicationLogRepository defines the interface for delivery log operations
type CommunicationLogRepository interface {
	CreateMany(ctx context.Context, logs []*models.CommunicationLog) error
	Upsert(ctx context.Context, log *models.CommunicationLog) error
	FindByCampaignID(ctx context.Context, campaignID string, page, limit int) ([]*models.CommunicationLog, error)
	CountByCampaignID(ctx context.Context, campaignID string) (int64, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
