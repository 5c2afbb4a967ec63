package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAIHandler()
	r.POST("/ai/natural-language", h.ParseNaturalLanguage)
	r.POST("/ai/generate-message", h.GenerateMessage)
	return r
}

func TestParseNaturalLanguageEndpoint(t *testing.T) {
	router := newAIRouter()

	body := `{"query": "customers who spent over 5000 and less than 3 visits"}`
	req := httptest.NewRequest(http.MethodPost, "/ai/natural-language", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rules []models.Rule `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rules, 2)
	assert.Equal(t, models.RuleFieldTotalSpent, resp.Rules[0].Field)
	assert.Equal(t, models.RuleFieldVisits, resp.Rules[1].Field)
	assert.Equal(t, models.ConnectorAnd, resp.Rules[1].Connector)
}

func TestParseNaturalLanguageEndpoint_MissingQuery(t *testing.T) {
	router := newAIRouter()

	req := httptest.NewRequest(http.MethodPost, "/ai/natural-language", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGenerateMessageEndpoint(t *testing.T) {
	router := newAIRouter()

	body := `{"objective": "win-back", "audienceType": "inactive", "tone": "friendly"}`
	req := httptest.NewRequest(http.MethodPost, "/ai/generate-message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 3)
	for _, s := range resp.Suggestions {
		assert.Contains(t, s, "{name}")
	}
}
