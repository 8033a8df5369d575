package services

import (
	"context"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/category"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/RyanNgWH/WhichCard-backend/internal/utils"
	"github.com/google/uuid"
)

// TransactionService handles transaction business logic. Recorded
// transactions carry the cashback they earned; the monthly accumulator the
// recommendation engine caps against aggregates over them.
type TransactionService struct {
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
	cardRepo        repositories.CardRepository
	merchantRepo    repositories.MerchantRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	cardRepo repositories.CardRepository,
	merchantRepo repositories.MerchantRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		cardRepo:        cardRepo,
		merchantRepo:    merchantRepo,
	}
}

// GetAllTransactions retrieves all transactions
func (s *TransactionService) GetAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return s.transactionRepo.FindAll(ctx)
}

// GetTransactionByID retrieves a transaction by id
func (s *TransactionService) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactionRepo.FindByID(ctx, id)
}

// CreateTransaction records a spend on one of the user's wallet cards and
// computes the cashback it earns. Unlike a recommendation, the cap is
// evaluated against the month the transaction dates from, since the record
// belongs to that month's accumulation.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID, cardName, merchantID string, dateTime time.Time, amount float64) (*models.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := findWalletCard(user.Cards, cardName)
	if i < 0 {
		return nil, &apperrors.UserCardNotFoundError{UserID: userID, CardName: cardName}
	}

	definition, err := s.cardRepo.FindByID(ctx, user.Cards[i].Card)
	if err != nil {
		return nil, err
	}

	merchant, err := s.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	spendCategory := category.Classify(merchant.MCC)
	rate := definition.CashbackRate(merchant.MCC, string(spendCategory))
	cashback := amount * rate / 100

	accumulated, err := s.transactionRepo.SumMonthlyCashback(ctx, userID, user.Cards[i].CardName, dateTime.Month(), dateTime.Year())
	if err != nil {
		return nil, err
	}

	if headroom := definition.CashbackLimit - accumulated; cashback > headroom {
		cashback = headroom
	}
	if cashback < 0 {
		cashback = 0
	}

	now := time.Now()
	transaction := &models.Transaction{
		ID:               uuid.NewString(),
		User:             userID,
		UserCard:         user.Cards[i].CardName,
		Merchant:         merchantID,
		DateTime:         dateTime,
		Amount:           amount,
		CashbackAmount:   utils.RoundToCents(cashback),
		CashbackCategory: string(spendCategory),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// DeleteTransactionByID deletes a transaction. Deleting an absent
// transaction is not an error.
func (s *TransactionService) DeleteTransactionByID(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}
