package services

import (
	"context"
	"testing"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction(t *testing.T) {
	user := walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID})
	svc := NewTransactionService(
		newFakeTransactionRepo(),
		newFakeUserRepo(user),
		newFakeCardRepo(ocbc365()),
		newFakeMerchantRepo(ikeaRestaurant()),
	)

	dateTime := time.Date(2023, time.July, 2, 19, 30, 0, 0, time.UTC)
	transaction, err := svc.CreateTransaction(context.Background(), testUserID, "My lovely ocbc", testMerchantID, dateTime, 20)
	require.NoError(t, err)
	assert.NotEmpty(t, transaction.ID)
	assert.Equal(t, testUserID, transaction.User)
	assert.Equal(t, "My lovely ocbc", transaction.UserCard)
	assert.Equal(t, testMerchantID, transaction.Merchant)
	assert.Equal(t, 20.0, transaction.Amount)
	assert.Equal(t, 1.2, transaction.CashbackAmount)
	assert.Equal(t, "dining", transaction.CashbackCategory)
}

func TestCreateTransactionCapsAtTransactionMonth(t *testing.T) {
	user := walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID})
	transactionRepo := newFakeTransactionRepo()
	// The March accumulation governs a March-dated transaction regardless of
	// when it is recorded.
	transactionRepo.setAccumulated(testUserID, "My lovely ocbc", time.March, 2023, 79.5)

	svc := NewTransactionService(
		transactionRepo,
		newFakeUserRepo(user),
		newFakeCardRepo(ocbc365()),
		newFakeMerchantRepo(ikeaRestaurant()),
	)

	dateTime := time.Date(2023, time.March, 14, 9, 0, 0, 0, time.UTC)
	transaction, err := svc.CreateTransaction(context.Background(), testUserID, "My lovely ocbc", testMerchantID, dateTime, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.5, transaction.CashbackAmount)
}

func TestCreateTransactionUnknownWalletCard(t *testing.T) {
	svc := NewTransactionService(
		newFakeTransactionRepo(),
		newFakeUserRepo(walletUser()),
		newFakeCardRepo(ocbc365()),
		newFakeMerchantRepo(ikeaRestaurant()),
	)

	_, err := svc.CreateTransaction(context.Background(), testUserID, "No such card", testMerchantID, time.Now(), 20)
	var notFound *apperrors.UserCardNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No such card", notFound.CardName)
}

func TestCreateTransactionUnknownMerchant(t *testing.T) {
	user := walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID})
	svc := NewTransactionService(
		newFakeTransactionRepo(),
		newFakeUserRepo(user),
		newFakeCardRepo(ocbc365()),
		newFakeMerchantRepo(),
	)

	_, err := svc.CreateTransaction(context.Background(), testUserID, "My lovely ocbc", "no-such-merchant", time.Now(), 20)
	var notFound *apperrors.MerchantNotFoundError
	require.ErrorAs(t, err, &notFound)
}
