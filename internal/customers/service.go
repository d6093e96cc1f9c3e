package customers

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidID is returned for lookups with a non-positive customer id.
var ErrInvalidID = errors.New("invalid customer id")

// ErrEmptyCode is returned for code lookups with an empty code.
var ErrEmptyCode = errors.New("customer code is required")

// Service provides customer lookup operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new customer Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// GetByID resolves a customer by id. Malformed ids fail before any
// storage access.
func (s *Service) GetByID(ctx context.Context, id int) (*Customer, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	c, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("failed to get customer", zap.Int("customer_id", id), zap.Error(err))
		}
		return nil, err
	}
	return c, nil
}

// GetByCode resolves a customer by its unique business code. Empty codes
// fail before any storage access.
func (s *Service) GetByCode(ctx context.Context, code string) (*Customer, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}

	c, err := s.storage.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("failed to get customer by code", zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}
	return c, nil
}

// ListAll returns the whole roster ordered by id ascending.
func (s *Service) ListAll(ctx context.Context) ([]Customer, error) {
	customers, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list customers", zap.Error(err))
		return nil, err
	}
	return customers, nil
}
