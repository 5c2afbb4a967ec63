package services

import (
	"context"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService handles order business logic
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// CreateOrder creates a new order
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.Date == "" {
		order.Date = time.Now().Format(models.DateLayout)
	}
	if order.Status == "" {
		order.Status = "completed"
	}
	return s.orderRepo.Create(ctx, order)
}

// GetOrderByID retrieves an order by ID
func (s *OrderService) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// GetOrders retrieves orders, optionally filtered by customer, with
// pagination plus the total count
func (s *OrderService) GetOrders(ctx context.Context, customerID string, page, limit int) ([]*models.Order, int64, error) {
	orders, err := s.orderRepo.FindPage(ctx, customerID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, customerID)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateOrder updates the editable fields of an order
func (s *OrderService) UpdateOrder(ctx context.Context, order *models.Order) error {
	existing, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return err
	}
	if order.Amount != 0 {
		existing.Amount = order.Amount
	}
	if order.Date != "" {
		existing.Date = order.Date
	}
	if order.Status != "" {
		existing.Status = order.Status
	}
	if order.Items != nil {
		existing.Items = order.Items
	}
	*order = *existing
	return s.orderRepo.Update(ctx, existing)
}

// DeleteOrder deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	return s.orderRepo.Delete(ctx, id)
}
