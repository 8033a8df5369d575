package services

import (
	"context"
	"strings"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/config"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/RyanNgWH/WhichCard-backend/internal/utils"
	"github.com/google/uuid"
)

// UserService handles user-related business logic, including the wallet of
// cards embedded in the user aggregate.
type UserService struct {
	userRepo repositories.UserRepository
	cardRepo repositories.CardRepository
	cfg      *config.Config
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, cardRepo repositories.CardRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cardRepo: cardRepo,
		cfg:      cfg,
	}
}

// GetAllUsers retrieves all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GetUserByID retrieves a user by id
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// CreateUser registers a new user. Emails are unique.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &apperrors.UserExistsError{Email: email}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		Cards:     []models.UserCard{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserUpdates carries the optional fields of a user update. Empty fields are
// left unchanged.
type UserUpdates struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserByID applies partial updates to a user.
func (s *UserService) UpdateUserByID(ctx context.Context, id string, updates UserUpdates) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		user.Name = updates.Name
	}
	if updates.Email != "" && updates.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, updates.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &apperrors.UserExistsError{Email: updates.Email}
		}
		user.Email = updates.Email
	}
	if updates.Password != "" {
		hashed, err := utils.HashPassword(updates.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUserByID deletes a user. Deleting an absent user is not an error.
func (s *UserService) DeleteUserByID(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

// Login checks a user's credentials and issues a session token. The same
// error covers an unknown email and a wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !utils.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrIncorrectCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.cfg)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUserCards retrieves a user's wallet entries
func (s *UserService) GetUserCards(ctx context.Context, userID string) ([]models.UserCard, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cards, nil
}

// AddUserCard adds a card to a user's wallet. The card definition is
// resolved by its (type, issuer) pair; wallet names are unique per user,
// compared case-insensitively.
func (s *UserService) AddUserCard(ctx context.Context, userID, cardName string, cardExpiry time.Time, cardType, issuer string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if findWalletCard(user.Cards, cardName) >= 0 {
		return nil, &apperrors.UserCardExistsError{UserID: userID, CardName: cardName}
	}

	definition, err := s.cardRepo.FindByTypeAndIssuer(ctx, cardType, issuer)
	if err != nil {
		return nil, err
	}

	user.Cards = append(user.Cards, models.UserCard{
		CardName:   cardName,
		CardExpiry: cardExpiry,
		Card:       definition.ID,
	})
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserCardByName retrieves one wallet entry with its card definition
// joined in.
func (s *UserService) GetUserCardByName(ctx context.Context, userID, cardName string) (*models.PopulatedUserCard, error) {
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

	return &models.PopulatedUserCard{
		CardName:   user.Cards[i].CardName,
		CardExpiry: user.Cards[i].CardExpiry,
		Card:       definition,
	}, nil
}

// UserCardUpdates carries the optional fields of a wallet entry update.
// Type and Issuer re-point the entry at another card definition and must be
// provided together; the handler enforces that pairing.
type UserCardUpdates struct {
	CardName   string
	CardExpiry *time.Time
	Type       string
	Issuer     string
}

// UpdateUserCardByName applies partial updates to a wallet entry.
func (s *UserService) UpdateUserCardByName(ctx context.Context, userID, cardName string, updates UserCardUpdates) (*models.UserCard, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := findWalletCard(user.Cards, cardName)
	if i < 0 {
		return nil, &apperrors.UserCardNotFoundError{UserID: userID, CardName: cardName}
	}

	if updates.CardName != "" {
		for j, other := range user.Cards {
			if j != i && strings.EqualFold(other.CardName, updates.CardName) {
				return nil, &apperrors.UserCardExistsError{UserID: userID, CardName: updates.CardName}
			}
		}
		user.Cards[i].CardName = updates.CardName
	}
	if updates.CardExpiry != nil {
		user.Cards[i].CardExpiry = *updates.CardExpiry
	}
	if updates.Type != "" && updates.Issuer != "" {
		definition, err := s.cardRepo.FindByTypeAndIssuer(ctx, updates.Type, updates.Issuer)
		if err != nil {
			return nil, err
		}
		user.Cards[i].Card = definition.ID
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	updated := user.Cards[i]
	return &updated, nil
}

// DeleteUserCardByName removes a wallet entry. Removing a name the user does
// not have is not an error.
func (s *UserService) DeleteUserCardByName(ctx context.Context, userID, cardName string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	i := findWalletCard(user.Cards, cardName)
	if i < 0 {
		return nil
	}

	user.Cards = append(user.Cards[:i], user.Cards[i+1:]...)
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

// findWalletCard returns the index of the wallet entry with the given name,
// compared case-insensitively, or -1.
func findWalletCard(cards []models.UserCard, cardName string) int {
	for i, card := range cards {
		if strings.EqualFold(card.CardName, cardName) {
			return i
		}
	}
	return -1
}
