package services

import (
	"context"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
)

// DashboardStats is the payload of the analytics dashboard endpoint
type DashboardStats struct {
	TotalCampaigns  int64              `json:"totalCampaigns"`
	TotalCustomers  int64              `json:"totalCustomers"`
	AvgDeliveryRate float64            `json:"avgDeliveryRate"`
	TopSegments     []*models.Segment  `json:"topSegments"`
	RecentCampaigns []*models.Campaign `json:"recentCampaigns"`
}

// AnalyticsService aggregates dashboard statistics
type AnalyticsService struct {
	campaignRepo repositories.CampaignRepository
	customerRepo repositories.CustomerRepository
	segmentRepo  repositories.SegmentRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	campaignRepo repositories.CampaignRepository,
	customerRepo repositories.CustomerRepository,
	segmentRepo repositories.SegmentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		segmentRepo:  segmentRepo,
	}
}

// GetDashboardStats returns campaign/customer totals, the average delivery
// rate, the top 3 segments by audience size and the 5 most recent campaigns
func (s *AnalyticsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalCampaigns, err := s.campaignRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.customerRepo.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	avgDeliveryRate, err := s.campaignRepo.AverageDeliveryRate(ctx)
	if err != nil {
		return nil, err
	}
	topSegments, err := s.segmentRepo.FindTopByAudienceSize(ctx, 3)
	if err != nil {
		return nil, err
	}
	recentCampaigns, err := s.campaignRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCampaigns:  totalCampaigns,
		TotalCustomers:  totalCustomers,
		AvgDeliveryRate: avgDeliveryRate,
		TopSegments:     topSegments,
		RecentCampaigns: recentCampaigns,
	}, nil
}
