package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeCheque       AccountType = "Cheque"
	AccountTypeSavings      AccountType = "Savings"
	AccountTypeFixedDeposit AccountType = "FixedDeposit"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "Active"
	AccountStatusInactive AccountStatus = "Inactive"
	AccountStatusClosed   AccountStatus = "Closed"
)

// Account is a bank account. The account number is the primary key and
// RowVersion guards against lost updates from concurrent writers.
type Account struct {
	AccountNumber    string          `json:"account_number"`
	AccountHolderID  int             `json:"account_holder_id"`
	Type             AccountType     `json:"type"`
	Status           AccountStatus   `json:"status"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	RowVersion       int64           `json:"-"`
}

type AccountHolder struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"user_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	DateOfBirth        time.Time `json:"date_of_birth"`
	IDNumber           string    `json:"id_number"`
	ResidentialAddress string    `json:"residential_address"`
	MobileNumber       string    `json:"mobile_number"`
	Email              string    `json:"email"`
}
