package models

import "time"

// Merchant statuses.
const (
	MerchantStatusActive   = "active"
	MerchantStatusInactive = "inactive"
)

// Merchant represents a merchant and the MCC that classifies its business.
type Merchant struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	PrettyName string    `bson:"prettyName" json:"prettyName"`
	Address    string    `bson:"address" json:"address"`
	MCC        int       `bson:"mcc" json:"mcc"`
	Longitude  float64   `bson:"longitude" json:"longitude"`
	Latitude   float64   `bson:"latitude" json:"latitude"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
