package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal rows are append-only; they are never updated or deleted.
type Withdrawal struct {
	ID              int             `json:"id"`
	AccountNumber   string          `json:"account_number"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
}
