package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/ai"
)

// AIHandler handles the rule-translation and message-suggestion endpoints
type AIHandler struct{}

// NewAIHandler creates a new AIHandler
func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

// ParseNaturalLanguage handles POST /ai/natural-language
func (h *AIHandler) ParseNaturalLanguage(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	rules := ai.ParseNaturalLanguage(req.Query)
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GenerateMessage handles POST /ai/generate-message
func (h *AIHandler) GenerateMessage(c *gin.Context) {
	var req struct {
		Objective    string `json:"objective"`
		AudienceType string `json:"audienceType"`
		Tone         string `json:"tone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions := ai.GenerateMessageSuggestions(req.Objective, req.AudienceType, req.Tone)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
