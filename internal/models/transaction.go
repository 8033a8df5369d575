package models

import "time"

// Transaction is a persisted spend on one of a user's wallet cards, together
// with the cashback it earned. The monthly cashback accumulator aggregates
// over these records.
type Transaction struct {
	ID               string    `bson:"_id" json:"id"`
	User             string    `bson:"user" json:"user"`
	UserCard         string    `bson:"userCard" json:"userCard"`
	Merchant         string    `bson:"merchant" json:"merchant"`
	DateTime         time.Time `bson:"dateTime" json:"dateTime"`
	Amount           float64   `bson:"amount" json:"amount"`
	CashbackAmount   float64   `bson:"cashbackAmount" json:"cashbackAmount"`
	CashbackCategory string    `bson:"cashbackCategory" json:"cashbackCategory"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
