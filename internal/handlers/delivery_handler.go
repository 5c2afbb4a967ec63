package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/services"
	"github.com/mini-crm/crm-backend/pkg/msggateway"
)

// DeliveryHandler handles delivery receipts and the simulated vendor API
type DeliveryHandler struct {
	receiptService *services.ReceiptService
	gateway        msggateway.Gateway
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(receiptService *services.ReceiptService, gateway msggateway.Gateway) *DeliveryHandler {
	return &DeliveryHandler{
		receiptService: receiptService,
		gateway:        gateway,
	}
}

// ProcessReceipt handles POST /delivery-receipts
func (h *DeliveryHandler) ProcessReceipt(c *gin.Context) {
	var req struct {
		CampaignID string `json:"campaignId" binding:"required"`
		CustomerID string `json:"customerId" binding:"required"`
		Status     string `json:"status" binding:"required"`
		Timestamp  string `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign ID, customer ID, and status are required"})
		return
	}

	timestamp := time.Time{}
	if req.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = t
		}
	}

	err := h.receiptService.ProcessReceipt(c.Request.Context(), req.CampaignID, req.CustomerID, req.Status, timestamp)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Delivery receipt processed successfully",
	})
}

// GetDeliveryLogs handles GET /delivery-receipts
func (h *DeliveryHandler) GetDeliveryLogs(c *gin.Context) {
	page, limit := pagination(c)
	campaignID := c.Query("campaignId")

	logs, total, err := h.receiptService.GetLogsByCampaign(c.Request.Context(), campaignID, page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":       logs,
		"total":      total,
		"page":       page,
		"totalPages": totalPages(total, limit),
	})
}

// VendorSendMessage handles POST /vendor/send-message. It simulates the
// vendor API: the message goes through the gateway and the resulting receipt
// is fed straight back into the receipt pipeline.
func (h *DeliveryHandler) VendorSendMessage(c *gin.Context) {
	var req struct {
		CampaignID   string `json:"campaignId" binding:"required"`
		CustomerID   string `json:"customerId" binding:"required"`
		CustomerName string `json:"customerName"`
		Message      string `json:"message" binding:"required"`
		Phone        string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign ID, customer ID, and message are required"})
		return
	}

	receipt, err := h.gateway.Send(req.CampaignID, req.CustomerID, req.Message)
	if err != nil {
		handleError(c, err)
		return
	}

	err = h.receiptService.ProcessReceipt(c.Request.Context(), req.CampaignID, req.CustomerID, receipt.Status, receipt.Timestamp)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   receipt.Status == msggateway.StatusSent,
		"status":    receipt.Status,
		"messageId": receipt.MessageID,
		"timestamp": receipt.Timestamp.Format(time.RFC3339),
	})
}
