package services

import (
	"context"
	"testing"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/config"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestCreateUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	user, err := svc.CreateUser(context.Background(), "Matthew", "matthew@whichcard.dev", "SuperSecurePassword")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Matthew", user.Name)
	assert.Equal(t, "matthew@whichcard.dev", user.Email)
	assert.NotEqual(t, "SuperSecurePassword", user.Password)
	assert.True(t, utils.CheckPassword(user.Password, "SuperSecurePassword"))
	assert.Empty(t, user.Cards)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{ID: testUserID, Email: "matthew@whichcard.dev"})
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	_, err := svc.CreateUser(context.Background(), "Matthew", "matthew@whichcard.dev", "SuperSecurePassword")
	var exists *apperrors.UserExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "matthew@whichcard.dev", exists.Email)
}

func TestUpdateUserByID(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{ID: testUserID, Name: "Matthew", Email: "matthew@whichcard.dev"})
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	user, err := svc.UpdateUserByID(context.Background(), testUserID, UserUpdates{Name: "Matt"})
	require.NoError(t, err)
	assert.Equal(t, "Matt", user.Name)
	assert.Equal(t, "matthew@whichcard.dev", user.Email)
}

func TestUpdateUserEmailTaken(t *testing.T) {
	userRepo := newFakeUserRepo(
		&models.User{ID: testUserID, Email: "matthew@whichcard.dev"},
		&models.User{ID: "other-user", Email: "taken@whichcard.dev"},
	)
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	_, err := svc.UpdateUserByID(context.Background(), testUserID, UserUpdates{Email: "taken@whichcard.dev"})
	var exists *apperrors.UserExistsError
	require.ErrorAs(t, err, &exists)
}

func TestLogin(t *testing.T) {
	hashed, err := utils.HashPassword("SuperSecurePassword")
	require.NoError(t, err)
	userRepo := newFakeUserRepo(&models.User{ID: testUserID, Email: "matthew@whichcard.dev", Password: hashed})
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	user, token, err := svc.Login(context.Background(), "matthew@whichcard.dev", "SuperSecurePassword")
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := utils.HashPassword("SuperSecurePassword")
	require.NoError(t, err)
	userRepo := newFakeUserRepo(&models.User{ID: testUserID, Email: "matthew@whichcard.dev", Password: hashed})
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	_, _, err = svc.Login(context.Background(), "matthew@whichcard.dev", "WrongPassword")
	assert.ErrorIs(t, err, apperrors.ErrIncorrectCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakeCardRepo(), testConfig())

	_, _, err := svc.Login(context.Background(), "nobody@whichcard.dev", "SuperSecurePassword")
	assert.ErrorIs(t, err, apperrors.ErrIncorrectCredentials)
}

func TestAddUserCard(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser())
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365()), testConfig())

	expiry := time.Date(2027, time.August, 31, 0, 0, 0, 0, time.UTC)
	user, err := svc.AddUserCard(context.Background(), testUserID, "My lovely ocbc", expiry, "365 credit", "ocbc")
	require.NoError(t, err)
	require.Len(t, user.Cards, 1)
	assert.Equal(t, "My lovely ocbc", user.Cards[0].CardName)
	assert.Equal(t, expiry, user.Cards[0].CardExpiry)
	assert.Equal(t, testCardID, user.Cards[0].Card)
}

func TestAddUserCardDuplicateNameCaseInsensitive(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID}))
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365()), testConfig())

	_, err := svc.AddUserCard(context.Background(), testUserID, "MY LOVELY OCBC", time.Now(), "365 credit", "ocbc")
	var exists *apperrors.UserCardExistsError
	require.ErrorAs(t, err, &exists)
}

func TestAddUserCardUnknownDefinition(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser())
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	_, err := svc.AddUserCard(context.Background(), testUserID, "My lovely ocbc", time.Now(), "365 credit", "ocbc")
	var notFound *apperrors.CardNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "365 credit", notFound.Type)
	assert.Equal(t, "ocbc", notFound.Issuer)
}

func TestGetUserCardByName(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID}))
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365()), testConfig())

	populated, err := svc.GetUserCardByName(context.Background(), testUserID, "my lovely OCBC")
	require.NoError(t, err)
	assert.Equal(t, "My lovely ocbc", populated.CardName)
	require.NotNil(t, populated.Card)
	assert.Equal(t, testCardID, populated.Card.ID)
	assert.Equal(t, "365 credit", populated.Card.Type)
}

func TestGetUserCardByNameNotFound(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser())
	svc := NewUserService(userRepo, newFakeCardRepo(), testConfig())

	_, err := svc.GetUserCardByName(context.Background(), testUserID, "No such card")
	var notFound *apperrors.UserCardNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpdateUserCardRename(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID}))
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365()), testConfig())

	card, err := svc.UpdateUserCardByName(context.Background(), testUserID, "My lovely ocbc", UserCardUpdates{CardName: "Daily driver"})
	require.NoError(t, err)
	assert.Equal(t, "Daily driver", card.CardName)
}

func TestUpdateUserCardRenameCollision(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser(
		models.UserCard{CardName: "My lovely ocbc", Card: testCardID},
		models.UserCard{CardName: "My second ocbc", Card: testCardID},
	))
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365()), testConfig())

	_, err := svc.UpdateUserCardByName(context.Background(), testUserID, "My lovely ocbc", UserCardUpdates{CardName: "my SECOND ocbc"})
	var exists *apperrors.UserCardExistsError
	require.ErrorAs(t, err, &exists)
}

func TestUpdateUserCardRepoint(t *testing.T) {
	other := &models.Card{ID: "card-other", Type: "live fresh", Issuer: "dbs"}
	userRepo := newFakeUserRepo(walletUser(models.UserCard{CardName: "My lovely ocbc", Card: testCardID}))
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365(), other), testConfig())

	card, err := svc.UpdateUserCardByName(context.Background(), testUserID, "My lovely ocbc", UserCardUpdates{Type: "live fresh", Issuer: "dbs"})
	require.NoError(t, err)
	assert.Equal(t, "card-other", card.Card)
}

func TestDeleteUserCardByName(t *testing.T) {
	userRepo := newFakeUserRepo(walletUser(
		models.UserCard{CardName: "My lovely ocbc", Card: testCardID},
		models.UserCard{CardName: "My second ocbc", Card: testCardID},
	))
	svc := NewUserService(userRepo, newFakeCardRepo(ocbc365()), testConfig())

	require.NoError(t, svc.DeleteUserCardByName(context.Background(), testUserID, "my lovely ocbc"))

	cards, err := svc.GetUserCards(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "My second ocbc", cards[0].CardName)

	// Deleting an absent name is a no-op.
	require.NoError(t, svc.DeleteUserCardByName(context.Background(), testUserID, "my lovely ocbc"))
}
