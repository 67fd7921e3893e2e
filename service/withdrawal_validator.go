package service

import (
	"fmt"
	"strings"

	"github.com/Sifundo-B/BankApi/model"

	"github.com/shopspring/decimal"
)

// ValidationError is a business-rule rejection with a human-readable
// reason. Handlers map it to a 400 response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateWithdrawal checks a proposed withdrawal against the account
// snapshot. Pure function, first failing rule wins.
//
// A fixed deposit withdrawal for more than the balance fails the balance
// check before the full-withdrawal rule is ever reached, so the fixed
// deposit rule only rejects partial amounts.
func ValidateWithdrawal(account *model.Account, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Reason: "Withdrawal amount must be greater than 0"}
	}

	if account.Status != model.AccountStatusActive {
		return &ValidationError{Reason: fmt.Sprintf(
			"Withdrawals are not allowed on %s accounts", strings.ToLower(string(account.Status)))}
	}

	if amount.GreaterThan(account.AvailableBalance) {
		return &ValidationError{Reason: "Withdrawal amount exceeds available balance"}
	}

	if account.Type == model.AccountTypeFixedDeposit && !amount.Equal(account.AvailableBalance) {
		return &ValidationError{Reason: "Only full (100%) withdrawals are allowed on fixed deposit accounts"}
	}

	return nil
}
