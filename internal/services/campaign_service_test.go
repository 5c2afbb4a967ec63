package services

import (
	"context"
	"testing"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCampaignRepo struct {
	created *models.Campaign
	updated *models.Campaign
}

func (r *fakeCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	c.ID = primitive.NewObjectID()
	r.created = c
	return nil
}

func (r *fakeCampaignRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	if r.created == nil || r.created.ID != id {
		return nil, models.ErrNotFound
	}
	copy := *r.created
	return &copy, nil
}

func (r *fakeCampaignRepo) FindPage(ctx context.Context, page, limit int) ([]*models.Campaign, error) {
	return nil, nil
}

func (r *fakeCampaignRepo) FindRecent(ctx context.Context, limit int) ([]*models.Campaign, error) {
	return nil, nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	r.updated = c
	return nil
}

func (r *fakeCampaignRepo) UpdateDeliveryStats(ctx context.Context, id primitive.ObjectID, sent, failed, audienceSize int, deliveryRate float64, status string) error {
	return nil
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (r *fakeCampaignRepo) Count(ctx context.Context) (int64, error)               { return 0, nil }
func (r *fakeCampaignRepo) AverageDeliveryRate(ctx context.Context) (float64, error) {
	return 0, nil
}

type fakeDispatcher struct {
	enqueued []primitive.ObjectID
}

func (d *fakeDispatcher) Enqueue(campaignID primitive.ObjectID) bool {
	d.enqueued = append(d.enqueued, campaignID)
	return true
}

func TestCreateCampaign_DefaultsAndEnqueue(t *testing.T) {
	repo := &fakeCampaignRepo{}
	dispatcher := &fakeDispatcher{}
	svc := NewCampaignService(repo, dispatcher)

	campaign := &models.Campaign{
		Name:    "VIP launch",
		Message: "Hi {name}, our new collection is live!",
		Sent:    99,
		Failed:  99,
	}
	require.NoError(t, svc.CreateCampaign(context.Background(), campaign))

	assert.Equal(t, models.CampaignStatusSending, campaign.Status)
	assert.Equal(t, 0, campaign.Sent)
	assert.Equal(t, 0, campaign.Failed)
	assert.Equal(t, 0.0, campaign.DeliveryRate)
	assert.Equal(t, []string{"High Value", "Product Launch"}, campaign.Tags)
	assert.False(t, campaign.CreatedAt.IsZero())

	require.Len(t, dispatcher.enqueued, 1)
	assert.Equal(t, campaign.ID, dispatcher.enqueued[0])
}

func TestCreateCampaign_DraftIsNotEnqueued(t *testing.T) {
	repo := &fakeCampaignRepo{}
	dispatcher := &fakeDispatcher{}
	svc := NewCampaignService(repo, dispatcher)

	campaign := &models.Campaign{
		Name:    "Holiday teaser",
		Message: "Hi {name}, something big is coming.",
		Status:  models.CampaignStatusDraft,
	}
	require.NoError(t, svc.CreateCampaign(context.Background(), campaign))

	assert.Equal(t, models.CampaignStatusDraft, campaign.Status)
	assert.Empty(t, dispatcher.enqueued)
}

func TestUpdateCampaign_MergesAndRegeneratesTags(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := NewCampaignService(repo, &fakeDispatcher{})

	original := &models.Campaign{
		Name:    "Quarterly update",
		Message: "Here is our catalogue",
		Status:  models.CampaignStatusDraft,
	}
	require.NoError(t, svc.CreateCampaign(context.Background(), original))

	update := &models.Campaign{
		ID:      original.ID,
		Message: "We miss you, {name}! Come back for 20% off.",
	}
	require.NoError(t, svc.UpdateCampaign(context.Background(), update))

	require.NotNil(t, repo.updated)
	assert.Equal(t, "Quarterly update", repo.updated.Name)
	assert.Equal(t, update.Message, repo.updated.Message)
	assert.Equal(t, []string{"Win-back"}, repo.updated.Tags)
}

func TestUpdateCampaign_NotFound(t *testing.T) {
	svc := NewCampaignService(&fakeCampaignRepo{}, &fakeDispatcher{})

	err := svc.UpdateCampaign(context.Background(), &models.Campaign{ID: primitive.NewObjectID()})

	assert.ErrorIs(t, err, models.ErrNotFound)
}
