package services

import (
	"context"
	"sort"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/category"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/RyanNgWH/WhichCard-backend/internal/utils"
)

// RecommendationService ranks a user's wallet cards by the cashback a
// prospective transaction would earn on each of them.
type RecommendationService struct {
	userRepo        repositories.UserRepository
	cardRepo        repositories.CardRepository
	merchantRepo    repositories.MerchantRepository
	transactionRepo repositories.TransactionRepository
	now             func() time.Time
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(
	userRepo repositories.UserRepository,
	cardRepo repositories.CardRepository,
	merchantRepo repositories.MerchantRepository,
	transactionRepo repositories.TransactionRepository,
) *RecommendationService {
	return &RecommendationService{
		userRepo:        userRepo,
		cardRepo:        cardRepo,
		merchantRepo:    merchantRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Recommend computes the expected cashback for spending amount at the given
// merchant on every card in the user's wallet and returns the wallet ranked
// by descending cashback amount.
//
// A card whose benefits don't cover the merchant, or whose MCC is excluded,
// still appears in the result with rate and amount 0. The only failures are
// an unknown user or merchant, and a wallet with no cards at all.
//
// Monthly caps are always evaluated against the current calendar month: the
// recommendation is forward-looking, it asks what a spend today would earn.
func (s *RecommendationService) Recommend(ctx context.Context, userID, merchantID string, amount float64) ([]models.Recommendation, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Cards) == 0 {
		return nil, &apperrors.NoCardsError{UserID: userID}
	}

	merchant, err := s.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	spendCategory := category.Classify(merchant.MCC)
	now := s.now()

	recommendations := make([]models.Recommendation, 0, len(user.Cards))
	for _, walletCard := range user.Cards {
		definition, err := s.cardRepo.FindByID(ctx, walletCard.Card)
		if err != nil {
			return nil, err
		}

		rate := definition.CashbackRate(merchant.MCC, string(spendCategory))
		expected := amount * rate / 100

		accumulated, err := s.transactionRepo.SumMonthlyCashback(ctx, userID, walletCard.CardName, now.Month(), now.Year())
		if err != nil {
			return nil, err
		}

		// A card never earns past its monthly cap: only the remaining
		// headroom counts, floored at zero for cards already over it.
		capped := expected
		if headroom := definition.CashbackLimit - accumulated; capped > headroom {
			capped = headroom
		}
		if capped < 0 {
			capped = 0
		}

		recommendations = append(recommendations, models.Recommendation{
			CardName:       walletCard.CardName,
			CashbackRate:   rate,
			CashbackAmount: utils.RoundToCents(capped),
		})
	}

	// Rank by descending cashback amount: stable ascending sort, then a full
	// reversal. Equal amounts therefore come out in reverse wallet order;
	// existing clients depend on this exact ordering.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].CashbackAmount < recommendations[j].CashbackAmount
	})
	for i, j := 0, len(recommendations)-1; i < j; i, j = i+1, j-1 {
		recommendations[i], recommendations[j] = recommendations[j], recommendations[i]
	}

	return recommendations, nil
}
