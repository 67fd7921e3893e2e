// file: model/dto.go

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountDTO is the response projection for an account. Enum values are
// rendered as their string names.
type AccountDTO struct {
	AccountNumber    string           `json:"account_number"`
	Type             string           `json:"type"`
	Status           string           `json:"status"`
	AvailableBalance decimal.Decimal  `json:"available_balance"`
	AccountHolder    AccountHolderDTO `json:"account_holder"`
}

type AccountHolderDTO struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IDNumber     string `json:"id_number"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
}

type WithdrawalDTO struct {
	ID              int             `json:"id"`
	AccountNumber   string          `json:"account_number"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// LoginResponse is returned on a successful login or token refresh.
type LoginResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	ExpiresAt    time.Time `json:"expires_at"`
}
