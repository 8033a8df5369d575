// Package repositories defines the persistence interfaces the services
// depend on. Implementations live in the mongodb subpackage; the cache
// subpackage provides a read-through wrapper for the card catalogue.
package repositories

import (
	"context"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/models"
)

// UserRepository handles storage of users and their embedded wallets.
// FindByID fails with apperrors.UserNotFoundError when the id is absent;
// FindByEmail returns (nil, nil) instead, since absence is the expected
// outcome of a registration uniqueness check.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// CardRepository handles storage of card definitions.
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id string) (*models.Card, error)
	FindByTypeAndIssuer(ctx context.Context, cardType, issuer string) (*models.Card, error)
	FindAll(ctx context.Context) ([]*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id string) error
}

// MerchantRepository handles storage of merchants.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *models.Merchant) error
	FindByID(ctx context.Context, id string) (*models.Merchant, error)
	FindByName(ctx context.Context, name string) (*models.Merchant, error)
	FindAll(ctx context.Context) ([]*models.Merchant, error)
	FindByStatus(ctx context.Context, status string) ([]*models.Merchant, error)
	Update(ctx context.Context, merchant *models.Merchant) error
	Delete(ctx context.Context, id string) error
}

// TransactionRepository handles storage of transactions and the monthly
// cashback aggregate the recommendation engine caps against.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	FindByID(ctx context.Context, id string) (*models.Transaction, error)
	FindAll(ctx context.Context) ([]*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	// SumMonthlyCashback returns the total cashback already earned on the
	// named wallet card in the given calendar month.
	SumMonthlyCashback(ctx context.Context, userID, cardName string, month time.Month, year int) (float64, error)
}
