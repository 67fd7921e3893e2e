// file: service/account_service_test.go

package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Sifundo-B/BankApi/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockAccountRepoForAccountSvc is a mock implementation of IAccountRepository
// for testing the account service.
type mockAccountRepoForAccountSvc struct{ mock.Mock }

func (m *mockAccountRepoForAccountSvc) GetAccountsByHolderName(name string) ([]*model.AccountDTO, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AccountDTO), args.Error(1)
}

func (m *mockAccountRepoForAccountSvc) GetAllAccounts() ([]*model.AccountDTO, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AccountDTO), args.Error(1)
}

func (m *mockAccountRepoForAccountSvc) GetAccountByNumber(accountNumber string) (*model.AccountDTO, error) {
	args := m.Called(accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountDTO), args.Error(1)
}

// --- Unused methods that are required to satisfy the interface contract ---
func (m *mockAccountRepoForAccountSvc) GetAccountForUpdate(*sql.Tx, string) (*model.Account, error) {
	return nil, nil
}
func (m *mockAccountRepoForAccountSvc) UpdateAccount(*sql.Tx, *model.Account) error { return nil }
func (m *mockAccountRepoForAccountSvc) CreateAccountHolder(*sql.Tx, *model.AccountHolder) error {
	return nil
}
func (m *mockAccountRepoForAccountSvc) CreateAccount(*sql.Tx, *model.Account) error { return nil }
func (m *mockAccountRepoForAccountSvc) CountAccountHolders() (int, error)           { return 0, nil }

func johnDoeAccounts() []*model.AccountDTO {
	holder := model.AccountHolderDTO{
		FirstName: "John",
		LastName:  "Doe",
		IDNumber:  "9001015009087",
		Email:     "john.doe@example.com",
	}
	return []*model.AccountDTO{
		{
			AccountNumber:    "1000000001",
			Type:             "Savings",
			Status:           "Active",
			AvailableBalance: decimal.RequireFromString("15000.00"),
			AccountHolder:    holder,
		},
		{
			AccountNumber:    "1000000002",
			Type:             "Cheque",
			Status:           "Active",
			AvailableBalance: decimal.RequireFromString("5000.00"),
			AccountHolder:    holder,
		},
	}
}

func TestAccountService_GetAccountsByHolder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo, nil)

		expected := johnDoeAccounts()
		mockRepo.On("GetAccountsByHolderName", "John Doe").Return(expected, nil).Once()

		accounts, err := accountService.GetAccountsByHolder(ctx, "John Doe")

		assert.NoError(t, err)
		assert.Equal(t, expected, accounts)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no accounts for holder", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo, nil)

		mockRepo.On("GetAccountsByHolderName", "Nobody Here").
			Return([]*model.AccountDTO{}, nil).Once()

		_, err := accountService.GetAccountsByHolder(ctx, "Nobody Here")

		assert.ErrorIs(t, err, ErrNoAccountsForHolder)
		mockRepo.AssertExpectations(t)
	})

	t.Run("partial name does not match", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo, nil)

		// The repository does an exact full-name match, so "John" alone
		// finds nothing.
		mockRepo.On("GetAccountsByHolderName", "John").
			Return([]*model.AccountDTO{}, nil).Once()

		_, err := accountService.GetAccountsByHolder(ctx, "John")

		assert.ErrorIs(t, err, ErrNoAccountsForHolder)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo, nil)

		expectedError := errors.New("db error")
		mockRepo.On("GetAccountsByHolderName", "John Doe").Return(nil, expectedError).Once()

		_, err := accountService.GetAccountsByHolder(ctx, "John Doe")

		assert.Equal(t, expectedError, err)
	})
}

func TestAccountService_GetAccountByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo, nil)

		expected := johnDoeAccounts()[0]
		mockRepo.On("GetAccountByNumber", "1000000001").Return(expected, nil).Once()

		account, err := accountService.GetAccountByNumber(ctx, "1000000001")

		assert.NoError(t, err)
		assert.Equal(t, expected, account)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo, nil)

		mockRepo.On("GetAccountByNumber", "9999999999").Return(nil, sql.ErrNoRows).Once()

		_, err := accountService.GetAccountByNumber(ctx, "9999999999")

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountService_GetAllAccounts(t *testing.T) {
	mockRepo := new(mockAccountRepoForAccountSvc)
	accountService := NewAccountService(mockRepo, nil)

	expected := johnDoeAccounts()
	mockRepo.On("GetAllAccounts").Return(expected, nil).Once()

	accounts, err := accountService.GetAllAccounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, accounts)
	mockRepo.AssertExpectations(t)
}
