package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignService *services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// CreateCampaign handles POST /campaigns
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req struct {
		Name         string        `json:"name" binding:"required"`
		Message      string        `json:"message" binding:"required"`
		Rules        []models.Rule `json:"rules" binding:"required"`
		AudienceSize int           `json:"audienceSize"`
		Status       string        `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, message, and rules are required"})
		return
	}

	campaign := &models.Campaign{
		Name:         req.Name,
		Message:      req.Message,
		Rules:        req.Rules,
		AudienceSize: req.AudienceSize,
		Status:       req.Status,
	}
	if email, ok := c.Get("userEmail"); ok {
		campaign.CreatedBy, _ = email.(string)
	}

	if err := h.campaignService.CreateCampaign(c.Request.Context(), campaign); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// GetCampaigns handles GET /campaigns
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	page, limit := pagination(c)

	campaigns, total, err := h.campaignService.GetCampaigns(c.Request.Context(), page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns":  campaigns,
		"total":      total,
		"page":       page,
		"totalPages": totalPages(total, limit),
	})
}

// GetCampaignByID handles GET /campaigns/:id
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	campaign, err := h.campaignService.GetCampaignByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// UpdateCampaign handles PUT /campaigns/:id
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var campaign models.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaign.ID = id

	if err := h.campaignService.UpdateCampaign(c.Request.Context(), &campaign); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /campaigns/:id
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.campaignService.DeleteCampaign(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
