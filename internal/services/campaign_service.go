package services

import (
	"context"
	"time"

	"github.com/mini-crm/crm-backend/internal/ai"
	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryDispatcher enqueues background delivery simulations. Enqueue must
// not block; a false return means the job was dropped.
type DeliveryDispatcher interface {
	Enqueue(campaignID primitive.ObjectID) bool
}

// CampaignService handles campaign business logic
type CampaignService struct {
	campaignRepo repositories.CampaignRepository
	dispatcher   DeliveryDispatcher
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo repositories.CampaignRepository, dispatcher DeliveryDispatcher) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		dispatcher:   dispatcher,
	}
}

// CreateCampaign stores a new campaign with generated tags and, unless it was
// created as a draft, hands it to the delivery dispatcher. The HTTP caller
// gets its response before delivery finishes.
func (s *CampaignService) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusSending
	}
	campaign.Sent = 0
	campaign.Failed = 0
	campaign.DeliveryRate = 0
	campaign.Tags = ai.GenerateCampaignTags(campaign.Name, campaign.Message)
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return err
	}

	if campaign.Status != models.CampaignStatusDraft {
		s.dispatcher.Enqueue(campaign.ID)
	}
	return nil
}

// GetCampaignByID retrieves a campaign by ID
func (s *CampaignService) GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

// GetCampaigns retrieves campaigns with pagination plus the total count
func (s *CampaignService) GetCampaigns(ctx context.Context, page, limit int) ([]*models.Campaign, int64, error) {
	campaigns, err := s.campaignRepo.FindPage(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.campaignRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// UpdateCampaign updates the editable fields of a campaign
func (s *CampaignService) UpdateCampaign(ctx context.Context, campaign *models.Campaign) error {
	existing, err := s.campaignRepo.FindByID(ctx, campaign.ID)
	if err != nil {
		return err
	}
	if campaign.Name != "" {
		existing.Name = campaign.Name
	}
	if campaign.Message != "" {
		existing.Message = campaign.Message
	}
	if campaign.Rules != nil {
		existing.Rules = campaign.Rules
	}
	if campaign.AudienceSize > 0 {
		existing.AudienceSize = campaign.AudienceSize
	}
	if campaign.Status != "" {
		existing.Status = campaign.Status
	}
	existing.Tags = ai.GenerateCampaignTags(existing.Name, existing.Message)
	*campaign = *existing
	return s.campaignRepo.Update(ctx, existing)
}

// DeleteCampaign deletes a campaign
func (s *CampaignService) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	return s.campaignRepo.Delete(ctx, id)
}
