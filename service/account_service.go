// file: service/account_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Sifundo-B/BankApi/model"
	"github.com/Sifundo-B/BankApi/repository"
)

// ErrNoAccountsForHolder is returned when the holder-name lookup matches
// nothing. The lookup is an exact match on "FirstName LastName".
var ErrNoAccountsForHolder = errors.New("no accounts found for this holder")

const accountCacheTTL = 10 * time.Minute

func accountCacheKey(accountNumber string) string {
	return fmt.Sprintf("account:%s", accountNumber)
}

func holderCacheKey(name string) string {
	return fmt.Sprintf("accounts:holder:%s", name)
}

// AccountService serves read-only account projections, with a cache-aside
// layer over the single-account and by-holder lookups.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{repo: repo, cache: cache}
}

// GetAccountsByHolder lists accounts for a holder's exact full name.
func (s *AccountService) GetAccountsByHolder(ctx context.Context, name string) ([]*model.AccountDTO, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, holderCacheKey(name)).Result(); err == nil {
			var accounts []*model.AccountDTO
			if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
				return accounts, nil
			}
		}
	}

	accounts, err := s.repo.GetAccountsByHolderName(name)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccountsForHolder
	}

	if s.cache != nil {
		if data, err := json.Marshal(accounts); err == nil {
			s.cache.Set(ctx, holderCacheKey(name), data, accountCacheTTL)
		}
	}

	return accounts, nil
}

// GetAllAccounts retrieves every account. Not cached; the privileged
// listing is expected to be fresh.
func (s *AccountService) GetAllAccounts(ctx context.Context) ([]*model.AccountDTO, error) {
	return s.repo.GetAllAccounts()
}

// GetAccountByNumber retrieves one account projection.
func (s *AccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*model.AccountDTO, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, accountCacheKey(accountNumber)).Result(); err == nil {
			var account model.AccountDTO
			if err := json.Unmarshal([]byte(cached), &account); err == nil {
				return &account, nil
			}
		}
	}

	account, err := s.repo.GetAccountByNumber(accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(account); err == nil {
			s.cache.Set(ctx, accountCacheKey(accountNumber), data, accountCacheTTL)
		}
	}

	return account, nil
}
