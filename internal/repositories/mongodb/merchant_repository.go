package mongodb

import (
	"context"
	"errors"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure MerchantRepository implements the interface
var _ repositories.MerchantRepository = (*MerchantRepository)(nil)

// MerchantRepository handles MongoDB operations for Merchant
type MerchantRepository struct {
	collection *mongo.Collection
}

// NewMerchantRepository creates a new MerchantRepository
func NewMerchantRepository(db *mongo.Database) *MerchantRepository {
	return &MerchantRepository{
		collection: db.Collection("merchants"),
	}
}

// Create inserts a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *models.Merchant) error {
	_, err := r.collection.InsertOne(ctx, merchant)
	return err
}

// FindByID finds a merchant by id
func (r *MerchantRepository) FindByID(ctx context.Context, id string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&merchant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.MerchantNotFoundError{MerchantID: id}
	}
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

// FindByName finds a merchant by its unique name. Returns (nil, nil) when no
// merchant has the name, since absence is what a uniqueness check hopes for.
func (r *MerchantRepository) FindByName(ctx context.Context, name string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&merchant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

// FindAll retrieves all merchants
func (r *MerchantRepository) FindAll(ctx context.Context) ([]*models.Merchant, error) {
	return r.find(ctx, bson.M{})
}

// FindByStatus retrieves all merchants with the given status
func (r *MerchantRepository) FindByStatus(ctx context.Context, status string) ([]*models.Merchant, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MerchantRepository) find(ctx context.Context, filter bson.M) ([]*models.Merchant, error) {
	var merchants []*models.Merchant
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &merchants); err != nil {
		return nil, err
	}
	if merchants == nil {
		merchants = []*models.Merchant{}
	}
	return merchants, nil
}

// Update updates an existing merchant
func (r *MerchantRepository) Update(ctx context.Context, merchant *models.Merchant) error {
	filter := bson.M{"_id": merchant.ID}
	update := bson.M{"$set": merchant}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &apperrors.MerchantNotFoundError{MerchantID: merchant.ID}
	}
	return nil
}

// Delete deletes a merchant by id. Deleting an absent merchant is not an
// error.
func (r *MerchantRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
