package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SegmentHandler handles segment-related HTTP requests
type SegmentHandler struct {
	segmentService *services.SegmentService
}

// NewSegmentHandler creates a new SegmentHandler
func NewSegmentHandler(segmentService *services.SegmentService) *SegmentHandler {
	return &SegmentHandler{
		segmentService: segmentService,
	}
}

// CreateSegment handles POST /segments
func (h *SegmentHandler) CreateSegment(c *gin.Context) {
	var req struct {
		Name  string        `json:"name" binding:"required"`
		Rules []models.Rule `json:"rules" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and rules are required"})
		return
	}

	segment := &models.Segment{
		Name:  req.Name,
		Rules: req.Rules,
	}
	if email, ok := c.Get("userEmail"); ok {
		segment.CreatedBy, _ = email.(string)
	}

	if err := h.segmentService.CreateSegment(c.Request.Context(), segment); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// PreviewAudience handles POST /segments/preview
func (h *SegmentHandler) PreviewAudience(c *gin.Context) {
	var req struct {
		Rules []models.Rule `json:"rules" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rules are required"})
		return
	}

	size, err := h.segmentService.PreviewAudience(c.Request.Context(), req.Rules)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"audienceSize": size})
}

// GetSegments handles GET /segments
func (h *SegmentHandler) GetSegments(c *gin.Context) {
	page, limit := pagination(c)

	segs, total, err := h.segmentService.GetSegments(c.Request.Context(), page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"segments":   segs,
		"total":      total,
		"page":       page,
		"totalPages": totalPages(total, limit),
	})
}

// GetSegmentByID handles GET /segments/:id
func (h *SegmentHandler) GetSegmentByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	segment, err := h.segmentService.GetSegmentByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// UpdateSegment handles PUT /segments/:id
func (h *SegmentHandler) UpdateSegment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var segment models.Segment
	if err := c.ShouldBindJSON(&segment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	segment.ID = id

	if err := h.segmentService.UpdateSegment(c.Request.Context(), &segment); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// DeleteSegment handles DELETE /segments/:id
func (h *SegmentHandler) DeleteSegment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.segmentService.DeleteSegment(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
