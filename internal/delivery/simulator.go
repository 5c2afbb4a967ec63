// Package delivery runs campaign delivery simulations in the background,
// detached from the HTTP request that triggered them.
package delivery

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"github.com/mini-crm/crm-backend/internal/segments"
	"github.com/mini-crm/crm-backend/pkg/msggateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Simulator delivers a campaign to its audience through the vendor gateway
// and records the outcome. A run mutates the campaign's delivery fields
// exactly once; there is no retry.
type Simulator struct {
	campaignRepo repositories.CampaignRepository
	customerRepo repositories.CustomerRepository
	logRepo      repositories.CommunicationLogRepository
	gateway      msggateway.Gateway

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a new Simulator
func NewSimulator(
	campaignRepo repositories.CampaignRepository,
	customerRepo repositories.CustomerRepository,
	logRepo repositories.CommunicationLogRepository,
	gateway msggateway.Gateway,
) *Simulator {
	return &Simulator{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		logRepo:      logRepo,
		gateway:      gateway,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the delivery simulation for one campaign. Draft campaigns are
// left untouched. On completion sent+failed equals the audience size and the
// campaign status is "sent".
func (s *Simulator) Run(ctx context.Context, campaignID primitive.ObjectID) error {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load campaign: %w", err)
	}
	if campaign.Status == models.CampaignStatusDraft {
		return nil
	}

	audience, audienceSize, err := s.resolveAudience(ctx, campaign)
	if err != nil {
		return fmt.Errorf("resolve audience: %w", err)
	}

	sent := 0
	failed := 0
	logs := make([]*models.CommunicationLog, 0, audienceSize)
	campaignHex := campaign.ID.Hex()

	for i := 0; i < audienceSize; i++ {
		customerID := "customer-" + strconv.Itoa(i)
		name := "there"
		if i < len(audience) {
			customerID = audience[i].ID.Hex()
			name = audience[i].Name
		}
		message := strings.ReplaceAll(campaign.Message, "{name}", name)

		receipt, err := s.gateway.Send(campaignHex, customerID, message)
		status := models.DeliveryStatusFailed
		messageID := ""
		deliveredAt := time.Now()
		if err == nil {
			status = receipt.Status
			messageID = receipt.MessageID
			deliveredAt = receipt.Timestamp
		}
		if status == models.DeliveryStatusSent {
			sent++
		} else {
			failed++
		}

		logs = append(logs, &models.CommunicationLog{
			CampaignID:  campaignHex,
			CustomerID:  customerID,
			Status:      status,
			MessageID:   messageID,
			DeliveredAt: deliveredAt,
		})
	}

	if err := s.logRepo.CreateMany(ctx, logs); err != nil {
		return fmt.Errorf("record delivery logs: %w", err)
	}

	deliveryRate := 0.0
	if audienceSize > 0 {
		deliveryRate = float64(sent) / float64(audienceSize) * 100
	}
	err = s.campaignRepo.UpdateDeliveryStats(ctx, campaign.ID, sent, failed, audienceSize, deliveryRate, models.CampaignStatusSent)
	if err != nil {
		return fmt.Errorf("update campaign stats: %w", err)
	}
	return nil
}

// resolveAudience determines who the campaign goes to. A stored audience
// size wins; otherwise the campaign's rules are evaluated against the
// customer collection. A campaign with neither falls back to a random size
// in [100, 1099], matching the behavior of the legacy simulator.
func (s *Simulator) resolveAudience(ctx context.Context, campaign *models.Campaign) ([]*models.Customer, int, error) {
	var matched []*models.Customer
	if len(campaign.Rules) > 0 {
		customers, err := s.customerRepo.FindAll(ctx)
		if err != nil {
			return nil, 0, err
		}
		matched = segments.Filter(campaign.Rules, customers, time.Now())
	}

	if campaign.AudienceSize > 0 {
		return matched, campaign.AudienceSize, nil
	}
	if len(campaign.Rules) > 0 {
		return matched, len(matched), nil
	}

	s.mu.Lock()
	size := s.rng.Intn(1000) + 100
	s.mu.Unlock()
	return nil, size, nil
}
