package models

import "time"

// UserCard is an entry in a user's wallet: the user's own label for a card
// plus a reference to the catalogue definition it points at. Card names are
// unique within a wallet, compared case-insensitively.
type UserCard struct {
	CardName   string    `bson:"cardName" json:"cardName"`
	CardExpiry time.Time `bson:"cardExpiry" json:"cardExpiry"`
	// Card is the id of the referenced Card definition. The definition is
	// joined in explicitly where it is needed, never embedded.
	Card string `bson:"card" json:"card"`
}

// User represents a registered user and their wallet of cards.
type User struct {
	ID        string     `bson:"_id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Email     string     `bson:"email" json:"email"`
	Password  string     `bson:"password" json:"-"`
	Cards     []UserCard `bson:"cards" json:"cards"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedUserCard is a wallet entry with its card definition joined in,
// returned when a single wallet card is requested.
type PopulatedUserCard struct {
	CardName   string    `json:"cardName"`
	CardExpiry time.Time `json:"cardExpiry"`
	Card       *Card     `json:"card"`
}
