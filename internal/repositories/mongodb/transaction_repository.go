package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/apperrors"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure TransactionRepository implements the interface
var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository handles MongoDB operations for Transaction
type TransactionRepository struct {
	collection *mongo.Collection
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{
		collection: db.Collection("transactions"),
	}
}

// Create inserts a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	_, err := r.collection.InsertOne(ctx, transaction)
	return err
}

// FindByID finds a transaction by id
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.TransactionNotFoundError{TransactionID: id}
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// FindAll retrieves all transactions
func (r *TransactionRepository) FindAll(ctx context.Context) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}
	return transactions, nil
}

// Delete deletes a transaction by id. Deleting an absent transaction is not
// an error.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// SumMonthlyCashback aggregates the cashback earned on the named wallet card
// over the given calendar month.
func (r *TransactionRepository) SumMonthlyCashback(ctx context.Context, userID, cardName string, month time.Month, year int) (float64, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"user":     userID,
			"userCard": cardName,
			"dateTime": bson.M{
				"$gte": monthStart,
				"$lt":  nextMonthStart,
			},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$cashbackAmount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		// No transactions on this card this month.
		return 0, nil
	}
	return results[0].Total, nil
}
