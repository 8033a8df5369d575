package models

import (
	"strings"
	"time"
)

// Benefit associates a spending category or an explicit set of MCCs with a
// cashback rate. The order of benefits on a card is significant: earlier
// entries win when more than one would match a transaction.
type Benefit struct {
	Category     string  `bson:"category" json:"category" binding:"required"`
	MCCs         []int   `bson:"mccs" json:"mccs"`
	CashbackRate float64 `bson:"cashbackRate" json:"cashbackRate" binding:"min=0,max=100"`
}

// Card is a card definition from the card catalogue, identified by its
// type and issuer (e.g. "365 credit" / "ocbc").
type Card struct {
	ID            string    `bson:"_id" json:"id"`
	Type          string    `bson:"type" json:"type"`
	Issuer        string    `bson:"issuer" json:"issuer"`
	Benefits      []Benefit `bson:"benefits" json:"benefits"`
	Exclusions    []int     `bson:"exclusions" json:"exclusions"`
	CashbackLimit float64   `bson:"cashbackLimit" json:"cashbackLimit"`
	// MinimumSpend is carried on the definition but not consulted when
	// ranking cards. Kept for catalogue completeness.
	MinimumSpend float64   `bson:"minimumSpend" json:"minimumSpend"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CashbackRate returns the cashback rate (as a percentage) the card earns for
// a transaction with the given MCC and spending category.
//
// An excluded MCC never earns cashback, regardless of any benefit entry.
// Otherwise the first benefit whose MCC list contains the transaction MCC, or
// whose category equals the transaction category ignoring case, decides the
// rate. No match earns nothing.
func (c *Card) CashbackRate(mcc int, category string) float64 {
	for _, excluded := range c.Exclusions {
		if excluded == mcc {
			return 0
		}
	}

	for _, benefit := range c.Benefits {
		for _, m := range benefit.MCCs {
			if m == mcc {
				return benefit.CashbackRate
			}
		}
		if strings.EqualFold(benefit.Category, category) {
			return benefit.CashbackRate
		}
	}

	return 0
}
