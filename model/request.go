// file: model/request.go

package model

import "github.com/shopspring/decimal"

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=Admin Banker Customer Auditor"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the opaque refresh token issued at login.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateWithdrawalRequest defines the payload for a new withdrawal.
// The amount sign and the business rules are checked by the withdrawal
// validator, not by struct tags; decimal values carry no `gt` support.
type CreateWithdrawalRequest struct {
	AccountNumber string          `json:"account_number" validate:"required,min=5,max=20"`
	Amount        decimal.Decimal `json:"amount"`
}
