package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/pkg/msggateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCampaignRepo holds a single campaign in memory
type fakeCampaignRepo struct {
	campaign *models.Campaign
}

func (r *fakeCampaignRepo) Create(ctx context.Context, c *models.Campaign) error { return nil }

func (r *fakeCampaignRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	if r.campaign == nil || r.campaign.ID != id {
		return nil, models.ErrNotFound
	}
	copy := *r.campaign
	return &copy, nil
}

func (r *fakeCampaignRepo) FindPage(ctx context.Context, page, limit int) ([]*models.Campaign, error) {
	return nil, nil
}

func (r *fakeCampaignRepo) FindRecent(ctx context.Context, limit int) ([]*models.Campaign, error) {
	return nil, nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, c *models.Campaign) error { return nil }

func (r *fakeCampaignRepo) UpdateDeliveryStats(ctx context.Context, id primitive.ObjectID, sent, failed, audienceSize int, deliveryRate float64, status string) error {
	r.campaign.Sent = sent
	r.campaign.Failed = failed
	r.campaign.AudienceSize = audienceSize
	r.campaign.DeliveryRate = deliveryRate
	r.campaign.Status = status
	return nil
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (r *fakeCampaignRepo) Count(ctx context.Context) (int64, error)               { return 0, nil }
func (r *fakeCampaignRepo) AverageDeliveryRate(ctx context.Context) (float64, error) {
	return 0, nil
}

// fakeCustomerRepo serves a fixed customer list
type fakeCustomerRepo struct {
	customers []*models.Customer
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error { return nil }
func (r *fakeCustomerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	return nil, models.ErrNotFound
}
func (r *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return nil, models.ErrNotFound
}
func (r *fakeCustomerRepo) FindPage(ctx context.Context, search string, page, limit int) ([]*models.Customer, error) {
	return r.customers, nil
}
func (r *fakeCustomerRepo) FindAll(ctx context.Context) ([]*models.Customer, error) {
	return r.customers, nil
}
func (r *fakeCustomerRepo) Update(ctx context.Context, c *models.Customer) error        { return nil }
func (r *fakeCustomerRepo) Delete(ctx context.Context, id primitive.ObjectID) error     { return nil }
func (r *fakeCustomerRepo) Count(ctx context.Context, search string) (int64, error)     { return 0, nil }

// fakeLogRepo captures inserted delivery logs
type fakeLogRepo struct {
	logs []*models.CommunicationLog
}

func (r *fakeLogRepo) CreateMany(ctx context.Context, logs []*models.CommunicationLog) error {
	r.logs = append(r.logs, logs...)
	return nil
}
func (r *fakeLogRepo) Upsert(ctx context.Context, log *models.CommunicationLog) error { return nil }
func (r *fakeLogRepo) FindByCampaignID(ctx context.Context, campaignID string, page, limit int) ([]*models.CommunicationLog, error) {
	return r.logs, nil
}
func (r *fakeLogRepo) CountByCampaignID(ctx context.Context, campaignID string) (int64, error) {
	return int64(len(r.logs)), nil
}

// patternGateway fails every nth send deterministically
type patternGateway struct {
	failEvery int
	sends     int
	messages  []string
}

func (g *patternGateway) Send(campaignID, customerID, message string) (*msggateway.Receipt, error) {
	g.sends++
	g.messages = append(g.messages, message)
	status := msggateway.StatusSent
	if g.failEvery > 0 && g.sends%g.failEvery == 0 {
		status = msggateway.StatusFailed
	}
	return &msggateway.Receipt{MessageID: "msg-test", Status: status, Timestamp: time.Now()}, nil
}

func newTestSimulator(campaign *models.Campaign, customers []*models.Customer, gw msggateway.Gateway) (*Simulator, *fakeCampaignRepo, *fakeLogRepo) {
	campaignRepo := &fakeCampaignRepo{campaign: campaign}
	logRepo := &fakeLogRepo{}
	sim := NewSimulator(campaignRepo, &fakeCustomerRepo{customers: customers}, logRepo, gw)
	return sim, campaignRepo, logRepo
}

func testCampaign(status string, audienceSize int, rules []models.Rule) *models.Campaign {
	return &models.Campaign{
		ID:           primitive.NewObjectID(),
		Name:         "Summer push",
		Message:      "Hi {name}, big sale!",
		Rules:        rules,
		AudienceSize: audienceSize,
		Status:       status,
	}
}

func TestRun_SentPlusFailedEqualsAudienceSize(t *testing.T) {
	campaign := testCampaign(models.CampaignStatusSending, 50, nil)
	sim, repo, logRepo := newTestSimulator(campaign, nil, &patternGateway{failEvery: 5})

	require.NoError(t, sim.Run(context.Background(), campaign.ID))

	assert.Equal(t, models.CampaignStatusSent, repo.campaign.Status)
	assert.Equal(t, 50, repo.campaign.AudienceSize)
	assert.Equal(t, 50, repo.campaign.Sent+repo.campaign.Failed)
	assert.Equal(t, 40, repo.campaign.Sent)
	assert.Equal(t, 10, repo.campaign.Failed)
	assert.InDelta(t, 80.0, repo.campaign.DeliveryRate, 0.001)
	assert.Len(t, logRepo.logs, 50)
}

func TestRun_ZeroAudienceNoDivisionByZero(t *testing.T) {
	rules := []models.Rule{{ID: "r", Field: models.RuleFieldTotalSpent, Operator: ">", Value: "1000"}}
	campaign := testCampaign(models.CampaignStatusSending, 0, rules)
	sim, repo, logRepo := newTestSimulator(campaign, nil, &patternGateway{})

	require.NoError(t, sim.Run(context.Background(), campaign.ID))

	assert.Equal(t, models.CampaignStatusSent, repo.campaign.Status)
	assert.Equal(t, 0, repo.campaign.AudienceSize)
	assert.Equal(t, 0, repo.campaign.Sent)
	assert.Equal(t, 0, repo.campaign.Failed)
	assert.Equal(t, 0.0, repo.campaign.DeliveryRate)
	assert.Empty(t, logRepo.logs)
}

func TestRun_DraftIsLeftUntouched(t *testing.T) {
	campaign := testCampaign(models.CampaignStatusDraft, 10, nil)
	gw := &patternGateway{}
	sim, repo, _ := newTestSimulator(campaign, nil, gw)

	require.NoError(t, sim.Run(context.Background(), campaign.ID))

	assert.Equal(t, models.CampaignStatusDraft, repo.campaign.Status)
	assert.Equal(t, 0, repo.campaign.Sent)
	assert.Zero(t, gw.sends)
}

func TestRun_AudienceFromRuleEvaluation(t *testing.T) {
	customers := []*models.Customer{
		{ID: primitive.NewObjectID(), Name: "Mohit", TotalSpent: 15000},
		{ID: primitive.NewObjectID(), Name: "Priya", TotalSpent: 500},
		{ID: primitive.NewObjectID(), Name: "Rahul", TotalSpent: 8000},
	}
	rules := []models.Rule{{ID: "r", Field: models.RuleFieldTotalSpent, Operator: ">", Value: "1000"}}
	campaign := testCampaign(models.CampaignStatusSending, 0, rules)
	gw := &patternGateway{}
	sim, repo, logRepo := newTestSimulator(campaign, customers, gw)

	require.NoError(t, sim.Run(context.Background(), campaign.ID))

	assert.Equal(t, 2, repo.campaign.AudienceSize)
	assert.Equal(t, 100.0, repo.campaign.DeliveryRate)
	require.Len(t, logRepo.logs, 2)
	assert.Equal(t, customers[0].ID.Hex(), logRepo.logs[0].CustomerID)
	assert.Equal(t, customers[2].ID.Hex(), logRepo.logs[1].CustomerID)

	// Message template is personalized per recipient
	require.Len(t, gw.messages, 2)
	assert.Equal(t, "Hi Mohit, big sale!", gw.messages[0])
	assert.Equal(t, "Hi Rahul, big sale!", gw.messages[1])
}

func TestRun_RandomFallbackWithoutRulesOrSize(t *testing.T) {
	campaign := testCampaign(models.CampaignStatusSending, 0, nil)
	sim, repo, _ := newTestSimulator(campaign, nil, &patternGateway{})

	require.NoError(t, sim.Run(context.Background(), campaign.ID))

	assert.GreaterOrEqual(t, repo.campaign.AudienceSize, 100)
	assert.LessOrEqual(t, repo.campaign.AudienceSize, 1099)
	assert.Equal(t, repo.campaign.AudienceSize, repo.campaign.Sent+repo.campaign.Failed)
}

func TestRun_UnknownCampaign(t *testing.T) {
	sim, _, _ := newTestSimulator(testCampaign(models.CampaignStatusSending, 1, nil), nil, &patternGateway{})

	err := sim.Run(context.Background(), primitive.NewObjectID())

	assert.Error(t, err)
}

func TestDispatcher_RunsEnqueuedJobs(t *testing.T) {
	campaign := testCampaign(models.CampaignStatusSending, 5, nil)
	sim, repo, _ := newTestSimulator(campaign, nil, &patternGateway{})
	d := NewDispatcher(sim, 2, 8)

	assert.True(t, d.Enqueue(campaign.ID))
	d.Stop()

	assert.Equal(t, models.CampaignStatusSent, repo.campaign.Status)
	assert.Equal(t, 5, repo.campaign.Sent+repo.campaign.Failed)
}
