package entity

import (
	"time"
)

// Transaction types form a closed set.
const (
	TransactionTypeAsset     = "asset"
	TransactionTypeLiability = "liability"
)

// Transaction is a single ledger entry. UserID is set at creation from the
// authenticated identity and never changes afterwards. Amount is stored as
// NUMERIC(10,2) and must be strictly positive.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
