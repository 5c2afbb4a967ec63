package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Email         string  `json:"email" binding:"required,email"`
		Phone         string  `json:"phone" binding:"required"`
		TotalSpent    float64 `json:"totalSpent"`
		Visits        int     `json:"visits"`
		LastVisit     string  `json:"lastVisit"`
		Orders        int     `json:"orders"`
		AvgOrderValue float64 `json:"avgOrderValue"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and phone are required"})
		return
	}

	customer := &models.Customer{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		TotalSpent:    req.TotalSpent,
		Visits:        req.Visits,
		LastVisit:     req.LastVisit,
		Orders:        req.Orders,
		AvgOrderValue: req.AvgOrderValue,
	}

	if err := h.customerService.CreateCustomer(c.Request.Context(), customer); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers handles GET /customers
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	page, limit := pagination(c)
	search := c.Query("search")

	customers, total, err := h.customerService.GetCustomers(c.Request.Context(), search, page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":  customers,
		"total":      total,
		"page":       page,
		"totalPages": totalPages(total, limit),
	})
}

// GetCustomerByID handles GET /customers/:id
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer.ID = id

	if err := h.customerService.UpdateCustomer(c.Request.Context(), &customer); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
