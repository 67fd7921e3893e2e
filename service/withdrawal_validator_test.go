package service

import (
	"testing"

	"github.com/Sifundo-B/BankApi/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func activeAccount(accType model.AccountType, balance string) *model.Account {
	return &model.Account{
		AccountNumber:    "1000000001",
		Type:             accType,
		Status:           model.AccountStatusActive,
		AvailableBalance: decimal.RequireFromString(balance),
	}
}

func TestValidateWithdrawal(t *testing.T) {
	tests := []struct {
		name       string
		account    *model.Account
		amount     string
		wantReason string
	}{
		{
			name:    "savings within balance is valid",
			account: activeAccount(model.AccountTypeSavings, "15000.00"),
			amount:  "100.00",
		},
		{
			name:    "cheque full balance is valid",
			account: activeAccount(model.AccountTypeCheque, "5000.00"),
			amount:  "5000.00",
		},
		{
			name:    "fixed deposit full balance is valid",
			account: activeAccount(model.AccountTypeFixedDeposit, "100000.00"),
			amount:  "100000.00",
		},
		{
			name:       "zero amount",
			account:    activeAccount(model.AccountTypeSavings, "15000.00"),
			amount:     "0",
			wantReason: "Withdrawal amount must be greater than 0",
		},
		{
			name:       "negative amount",
			account:    activeAccount(model.AccountTypeSavings, "15000.00"),
			amount:     "-5.00",
			wantReason: "Withdrawal amount must be greater than 0",
		},
		{
			name: "inactive account rejects any amount",
			account: &model.Account{
				Type:             model.AccountTypeSavings,
				Status:           model.AccountStatusInactive,
				AvailableBalance: decimal.RequireFromString("15000.00"),
			},
			amount:     "1.00",
			wantReason: "Withdrawals are not allowed on inactive accounts",
		},
		{
			name: "closed account reports its status lower cased",
			account: &model.Account{
				Type:             model.AccountTypeFixedDeposit,
				Status:           model.AccountStatusClosed,
				AvailableBalance: decimal.Zero,
			},
			amount:     "100.00",
			wantReason: "Withdrawals are not allowed on closed accounts",
		},
		{
			name:       "amount over balance",
			account:    activeAccount(model.AccountTypeSavings, "100.00"),
			amount:     "100.01",
			wantReason: "Withdrawal amount exceeds available balance",
		},
		{
			name:       "fixed deposit partial withdrawal",
			account:    activeAccount(model.AccountTypeFixedDeposit, "100000.00"),
			amount:     "50000.00",
			wantReason: "Only full (100%) withdrawals are allowed on fixed deposit accounts",
		},
		{
			// The balance check wins over the fixed deposit rule.
			name:       "fixed deposit over balance reports balance exceeded",
			account:    activeAccount(model.AccountTypeFixedDeposit, "100000.00"),
			amount:     "100000.01",
			wantReason: "Withdrawal amount exceeds available balance",
		},
		{
			// The amount check wins over the status check.
			name: "negative amount on inactive account reports the amount",
			account: &model.Account{
				Type:             model.AccountTypeSavings,
				Status:           model.AccountStatusInactive,
				AvailableBalance: decimal.RequireFromString("15000.00"),
			},
			amount:     "-1.00",
			wantReason: "Withdrawal amount must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWithdrawal(tt.account, decimal.RequireFromString(tt.amount))

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantReason, validationErr.Reason)
		})
	}
}
