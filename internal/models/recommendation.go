package models

// Recommendation is one entry of a ranked wallet: the expected cashback for
// spending a given amount on the named wallet card.
type Recommendation struct {
	CardName       string  `json:"cardName"`
	CashbackRate   float64 `json:"cashbackRate"`
	CashbackAmount float64 `json:"cashbackAmount"`
}
