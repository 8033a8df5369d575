package services

import (
	"context"
	"testing"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMerchant(t *testing.T) {
	svc := NewMerchantService(newFakeMerchantRepo())

	merchant, err := svc.CreateMerchant(context.Background(), &models.Merchant{
		Name:       "ikea_restaurant",
		PrettyName: "IKEA Restaurant",
		MCC:        5814,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, merchant.ID)
	assert.Equal(t, models.MerchantStatusActive, merchant.Status)
}

func TestCreateMerchantDuplicateName(t *testing.T) {
	svc := NewMerchantService(newFakeMerchantRepo(ikeaRestaurant()))

	_, err := svc.CreateMerchant(context.Background(), &models.Merchant{Name: "ikea_restaurant", MCC: 5814})
	var exists *apperrors.MerchantExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "ikea_restaurant", exists.Name)
}

func TestGetActiveMerchants(t *testing.T) {
	retired := &models.Merchant{ID: "m-retired", Name: "closed_shop", MCC: 5999, Status: models.MerchantStatusInactive}
	svc := NewMerchantService(newFakeMerchantRepo(ikeaRestaurant(), retired))

	merchants, err := svc.GetActiveMerchants(context.Background())
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, "ikea_restaurant", merchants[0].Name)
}

func TestUpdateMerchantByID(t *testing.T) {
	svc := NewMerchantService(newFakeMerchantRepo(ikeaRestaurant()))

	mcc := 5812
	merchant, err := svc.UpdateMerchantByID(context.Background(), testMerchantID, MerchantUpdates{
		MCC:    &mcc,
		Status: models.MerchantStatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 5812, merchant.MCC)
	assert.Equal(t, models.MerchantStatusInactive, merchant.Status)
	assert.Equal(t, "IKEA Restaurant", merchant.PrettyName)
}
