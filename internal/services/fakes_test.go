package services

import (
	"context"
	"strings"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, &apperrors.UserNotFoundError{UserID: id}
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return &apperrors.UserNotFoundError{UserID: user.ID}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeCardRepo struct {
	cards map[string]*models.Card
}

func newFakeCardRepo(cards ...*models.Card) *fakeCardRepo {
	repo := &fakeCardRepo{cards: make(map[string]*models.Card)}
	for _, c := range cards {
		repo.cards[c.ID] = c
	}
	return repo
}

func (r *fakeCardRepo) Create(_ context.Context, card *models.Card) error {
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id string) (*models.Card, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, &apperrors.CardNotFoundError{CardID: id}
	}
	return card, nil
}

func (r *fakeCardRepo) FindByTypeAndIssuer(_ context.Context, cardType, issuer string) (*models.Card, error) {
	cardType = strings.ToLower(cardType)
	issuer = strings.ToLower(issuer)
	for _, card := range r.cards {
		if card.Type == cardType && card.Issuer == issuer {
			return card, nil
		}
	}
	return nil, &apperrors.CardNotFoundError{Type: cardType, Issuer: issuer}
}

func (r *fakeCardRepo) FindAll(_ context.Context) ([]*models.Card, error) {
	cards := make([]*models.Card, 0, len(r.cards))
	for _, card := range r.cards {
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *fakeCardRepo) Update(_ context.Context, card *models.Card) error {
	if _, ok := r.cards[card.ID]; !ok {
		return &apperrors.CardNotFoundError{CardID: card.ID}
	}
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id string) error {
	delete(r.cards, id)
	return nil
}

type fakeMerchantRepo struct {
	merchants map[string]*models.Merchant
}

func newFakeMerchantRepo(merchants ...*models.Merchant) *fakeMerchantRepo {
	repo := &fakeMerchantRepo{merchants: make(map[string]*models.Merchant)}
	for _, m := range merchants {
		repo.merchants[m.ID] = m
	}
	return repo
}

func (r *fakeMerchantRepo) Create(_ context.Context, merchant *models.Merchant) error {
	r.merchants[merchant.ID] = merchant
	return nil
}

func (r *fakeMerchantRepo) FindByID(_ context.Context, id string) (*models.Merchant, error) {
	merchant, ok := r.merchants[id]
	if !ok {
		return nil, &apperrors.MerchantNotFoundError{MerchantID: id}
	}
	return merchant, nil
}

func (r *fakeMerchantRepo) FindByName(_ context.Context, name string) (*models.Merchant, error) {
	for _, merchant := range r.merchants {
		if merchant.Name == name {
			return merchant, nil
		}
	}
	return nil, nil
}

func (r *fakeMerchantRepo) FindAll(_ context.Context) ([]*models.Merchant, error) {
	merchants := make([]*models.Merchant, 0, len(r.merchants))
	for _, merchant := range r.merchants {
		merchants = append(merchants, merchant)
	}
	return merchants, nil
}

func (r *fakeMerchantRepo) FindByStatus(_ context.Context, status string) ([]*models.Merchant, error) {
	var merchants []*models.Merchant
	for _, merchant := range r.merchants {
		if merchant.Status == status {
			merchants = append(merchants, merchant)
		}
	}
	return merchants, nil
}

func (r *fakeMerchantRepo) Update(_ context.Context, merchant *models.Merchant) error {
	if _, ok := r.merchants[merchant.ID]; !ok {
		return &apperrors.MerchantNotFoundError{MerchantID: merchant.ID}
	}
	r.merchants[merchant.ID] = merchant
	return nil
}

func (r *fakeMerchantRepo) Delete(_ context.Context, id string) error {
	delete(r.merchants, id)
	return nil
}

// fakeTransactionRepo serves canned monthly accumulations keyed by user,
// card name, month and year, and records created transactions.
type fakeTransactionRepo struct {
	transactions map[string]*models.Transaction
	accumulated  map[accumulationKey]float64
}

type accumulationKey struct {
	userID   string
	cardName string
	month    time.Month
	year     int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[string]*models.Transaction),
		accumulated:  make(map[accumulationKey]float64),
	}
}

func (r *fakeTransactionRepo) setAccumulated(userID, cardName string, month time.Month, year int, total float64) {
	r.accumulated[accumulationKey{userID, cardName, month, year}] = total
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *models.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id string) (*models.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, &apperrors.TransactionNotFoundError{TransactionID: id}
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*models.Transaction, error) {
	transactions := make([]*models.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id string) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) SumMonthlyCashback(_ context.Context, userID, cardName string, month time.Month, year int) (float64, error) {
	return r.accumulated[accumulationKey{userID, cardName, month, year}], nil
}
