package mongodb

import (
	"context"
	"errors"
	"strings"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure CardRepository implements the interface
var _ repositories.CardRepository = (*CardRepository)(nil)

// CardRepository handles MongoDB operations for card definitions
type CardRepository struct {
	collection *mongo.Collection
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *mongo.Database) *CardRepository {
	return &CardRepository{
		collection: db.Collection("cards"),
	}
}

// Create inserts a new card definition
func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	_, err := r.collection.InsertOne(ctx, card)
	return err
}

// FindByID finds a card definition by id
func (r *CardRepository) FindByID(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.CardNotFoundError{CardID: id}
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByTypeAndIssuer finds a card definition by its (type, issuer) pair.
// Both are stored and matched lowercased.
func (r *CardRepository) FindByTypeAndIssuer(ctx context.Context, cardType, issuer string) (*models.Card, error) {
	cardType = strings.ToLower(cardType)
	issuer = strings.ToLower(issuer)

	var card models.Card
	filter := bson.M{"type": cardType, "issuer": issuer}
	err := r.collection.FindOne(ctx, filter).Decode(&card)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.CardNotFoundError{Type: cardType, Issuer: issuer}
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// FindAll retrieves all card definitions
func (r *CardRepository) FindAll(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*models.Card{}
	}
	return cards, nil
}

// Update updates an existing card definition
func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	filter := bson.M{"_id": card.ID}
	update := bson.M{"$set": card}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &apperrors.CardNotFoundError{CardID: card.ID}
	}
	return nil
}

// Delete deletes a card definition by id. Deleting an absent card is not an
// error.
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
