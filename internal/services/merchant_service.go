package services

import (
	"context"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/google/uuid"
)

// MerchantService handles merchant business logic
type MerchantService struct {
	merchantRepo repositories.MerchantRepository
}

// NewMerchantService creates a new MerchantService
func NewMerchantService(merchantRepo repositories.MerchantRepository) *MerchantService {
	return &MerchantService{
		merchantRepo: merchantRepo,
	}
}

// GetAllMerchants retrieves all merchants
func (s *MerchantService) GetAllMerchants(ctx context.Context) ([]*models.Merchant, error) {
	return s.merchantRepo.FindAll(ctx)
}

// GetActiveMerchants retrieves all active merchants
func (s *MerchantService) GetActiveMerchants(ctx context.Context) ([]*models.Merchant, error) {
	return s.merchantRepo.FindByStatus(ctx, models.MerchantStatusActive)
}

// GetMerchantByID retrieves a merchant by id
func (s *MerchantService) GetMerchantByID(ctx context.Context, id string) (*models.Merchant, error) {
	return s.merchantRepo.FindByID(ctx, id)
}

// CreateMerchant registers a new merchant. Names are unique; new merchants
// start active.
func (s *MerchantService) CreateMerchant(ctx context.Context, merchant *models.Merchant) (*models.Merchant, error) {
	existing, err := s.merchantRepo.FindByName(ctx, merchant.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &apperrors.MerchantExistsError{Name: merchant.Name}
	}

	now := time.Now()
	merchant.ID = uuid.NewString()
	merchant.Status = models.MerchantStatusActive
	merchant.CreatedAt = now
	merchant.UpdatedAt = now

	if err := s.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// MerchantUpdates carries the optional fields of a merchant update.
type MerchantUpdates struct {
	PrettyName string
	Address    string
	MCC        *int
	Longitude  *float64
	Latitude   *float64
	Status     string
}

// UpdateMerchantByID applies partial updates to a merchant.
func (s *MerchantService) UpdateMerchantByID(ctx context.Context, id string, updates MerchantUpdates) (*models.Merchant, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.PrettyName != "" {
		merchant.PrettyName = updates.PrettyName
	}
	if updates.Address != "" {
		merchant.Address = updates.Address
	}
	if updates.MCC != nil {
		merchant.MCC = *updates.MCC
	}
	if updates.Longitude != nil {
		merchant.Longitude = *updates.Longitude
	}
	if updates.Latitude != nil {
		merchant.Latitude = *updates.Latitude
	}
	if updates.Status != "" {
		merchant.Status = updates.Status
	}

	merchant.UpdatedAt = time.Now()
	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// DeleteMerchantByID deletes a merchant. Deleting an absent merchant is not
// an error.
func (s *MerchantService) DeleteMerchantByID(ctx context.Context, id string) error {
	return s.merchantRepo.Delete(ctx, id)
}
