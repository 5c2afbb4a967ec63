package services

import (
	"context"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
)

// ReceiptService processes delivery receipts from the vendor gateway
type ReceiptService struct {
	logRepo repositories.CommunicationLogRepository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(logRepo repositories.CommunicationLogRepository) *ReceiptService {
	return &ReceiptService{
		logRepo: logRepo,
	}
}

// ProcessReceipt records one delivery outcome. Replays of the same
// (campaignId, customerId) pair update the existing entry in place.
func (s *ReceiptService) ProcessReceipt(ctx context.Context, campaignID, customerID, status string, timestamp time.Time) error {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return s.logRepo.Upsert(ctx, &models.CommunicationLog{
		CampaignID:  campaignID,
		CustomerID:  customerID,
		Status:      status,
		DeliveredAt: timestamp,
	})
}

// GetLogsByCampaign lists delivery logs for a campaign with pagination
func (s *ReceiptService) GetLogsByCampaign(ctx context.Context, campaignID string, page, limit int) ([]*models.CommunicationLog, int64, error) {
	logs, err := s.logRepo.FindByCampaignID(ctx, campaignID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.logRepo.CountByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
