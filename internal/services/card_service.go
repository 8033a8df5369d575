package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/google/uuid"
)

// CardService handles card-catalogue business logic
type CardService struct {
	cardRepo repositories.CardRepository
}

// NewCardService creates a new CardService
func NewCardService(cardRepo repositories.CardRepository) *CardService {
	return &CardService{
		cardRepo: cardRepo,
	}
}

// GetAllCards retrieves all card definitions
func (s *CardService) GetAllCards(ctx context.Context) ([]*models.Card, error) {
	return s.cardRepo.FindAll(ctx)
}

// GetCardByID retrieves a card definition by id
func (s *CardService) GetCardByID(ctx context.Context, id string) (*models.Card, error) {
	return s.cardRepo.FindByID(ctx, id)
}

// CreateCard adds a definition to the catalogue. The (type, issuer) pair is
// unique and stored lowercased; benefit order is preserved as given, since
// earlier benefits take priority when matching.
func (s *CardService) CreateCard(ctx context.Context, card *models.Card) (*models.Card, error) {
	card.Type = strings.ToLower(card.Type)
	card.Issuer = strings.ToLower(card.Issuer)

	_, err := s.cardRepo.FindByTypeAndIssuer(ctx, card.Type, card.Issuer)
	if err == nil {
		return nil, &apperrors.CardExistsError{Type: card.Type, Issuer: card.Issuer}
	}
	var notFound *apperrors.CardNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	now := time.Now()
	card.ID = uuid.NewString()
	card.CreatedAt = now
	card.UpdatedAt = now
	if card.Benefits == nil {
		card.Benefits = []models.Benefit{}
	}
	if card.Exclusions == nil {
		card.Exclusions = []int{}
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// CardUpdates carries the optional fields of a card definition update. Nil
// slices and nil numbers are left unchanged.
type CardUpdates struct {
	Benefits      []models.Benefit
	Exclusions    []int
	CashbackLimit *float64
	MinimumSpend  *float64
}

// UpdateCardByID applies partial updates to a card definition.
func (s *CardService) UpdateCardByID(ctx context.Context, id string, updates CardUpdates) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Benefits != nil {
		card.Benefits = updates.Benefits
	}
	if updates.Exclusions != nil {
		card.Exclusions = updates.Exclusions
	}
	if updates.CashbackLimit != nil {
		card.CashbackLimit = *updates.CashbackLimit
	}
	if updates.MinimumSpend != nil {
		card.MinimumSpend = *updates.MinimumSpend
	}

	card.UpdatedAt = time.Now()
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCardByID removes a definition from the catalogue. Deleting an absent
// card is not an error.
func (s *CardService) DeleteCardByID(ctx context.Context, id string) error {
	return s.cardRepo.Delete(ctx, id)
}
