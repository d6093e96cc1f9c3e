package sales

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/customers"
)

// ErrMissingField is returned when the amount or the customer id is absent.
var ErrMissingField = errors.New("amount and id_customer are required")

// ErrInvalidAmount is returned when the amount is zero or negative.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// ErrUnknownCustomer is returned when the customer id does not resolve to an
// existing customer.
var ErrUnknownCustomer = errors.New("customer does not exist")

// CustomerLookup resolves customers for sale validation.
type CustomerLookup interface {
	GetByID(ctx context.Context, id int) (*customers.Customer, error)
}

// Service provides high-level sales operations on a Storage backend.
type Service struct {
	storage   Storage
	customers CustomerLookup
	logger    *zap.Logger
}

// NewService creates a new sales Service.
func NewService(storage Storage, lookup CustomerLookup, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage:   storage,
		customers: lookup,
		logger:    logger,
	}
}

// Validate applies the sale creation rules in order, short-circuiting on the
// first failure: both fields present, amount strictly positive, customer
// resolvable. It performs at most one read and no writes.
func (s *Service) Validate(ctx context.Context, in CreateSaleInput) error {
	if in.Amount == nil || in.CustomerID == nil {
		return ErrMissingField
	}
	if *in.Amount <= 0 {
		return ErrInvalidAmount
	}

	if _, err := s.customers.GetByID(ctx, *in.CustomerID); err != nil {
		if errors.Is(err, customers.ErrNotFound) || errors.Is(err, customers.ErrInvalidID) {
			return fmt.Errorf("%w: id %d", ErrUnknownCustomer, *in.CustomerID)
		}
		return fmt.Errorf("failed to check customer: %w", err)
	}

	return nil
}

// CreateSale validates and persists a new sale. On success the returned sale
// carries the storage-assigned id and created_at.
func (s *Service) CreateSale(ctx context.Context, in CreateSaleInput) (*Sale, error) {
	if err := s.Validate(ctx, in); err != nil {
		return nil, err
	}

	sale, err := s.storage.Insert(ctx, *in.Amount, *in.CustomerID)
	if err != nil {
		s.logger.Error("failed to save sale",
			zap.Float64("amount", *in.Amount),
			zap.Int("customer_id", *in.CustomerID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sale created",
		zap.Int("sale_id", sale.ID),
		zap.Float64("amount", sale.Amount),
		zap.Int("customer_id", sale.CustomerID),
	)
	return sale, nil
}

// ListSales retrieves all sales joined with their customer, newest first.
func (s *Service) ListSales(ctx context.Context) ([]SaleWithCustomer, error) {
	sales, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list sales", zap.Error(err))
		return nil, err
	}
	return sales, nil
}
