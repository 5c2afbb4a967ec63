package services

import (
	"context"
	"errors"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/mini-crm/crm-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerService handles customer business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// CreateCustomer creates a new customer. Email must be unique.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if _, err := s.customerRepo.FindByEmail(ctx, customer.Email); err == nil {
		return models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	if customer.LastVisit == "" {
		customer.LastVisit = time.Now().Format(models.DateLayout)
	}
	return s.customerRepo.Create(ctx, customer)
}

// GetCustomerByID retrieves a customer by ID
func (s *CustomerService) GetCustomerByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// GetCustomers retrieves customers matching an optional search term with
// pagination plus the total count
func (s *CustomerService) GetCustomers(ctx context.Context, search string, page, limit int) ([]*models.Customer, int64, error) {
	customers, err := s.customerRepo.FindPage(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// UpdateCustomer updates the editable fields of a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	existing, err := s.customerRepo.FindByID(ctx, customer.ID)
	if err != nil {
		return err
	}
	if customer.Name != "" {
		existing.Name = customer.Name
	}
	if customer.Email != "" {
		existing.Email = customer.Email
	}
	if customer.Phone != "" {
		existing.Phone = customer.Phone
	}
	if customer.LastVisit != "" {
		existing.LastVisit = customer.LastVisit
	}
	if customer.TotalSpent != 0 {
		existing.TotalSpent = customer.TotalSpent
	}
	if customer.Visits != 0 {
		existing.Visits = customer.Visits
	}
	if customer.Orders != 0 {
		existing.Orders = customer.Orders
	}
	if customer.AvgOrderValue != 0 {
		existing.AvgOrderValue = customer.AvgOrderValue
	}
	*customer = *existing
	return s.customerRepo.Update(ctx, existing)
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	return s.customerRepo.Delete(ctx, id)
}
