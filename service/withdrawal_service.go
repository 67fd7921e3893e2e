package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sifundo-B/BankApi/audit"
	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/model"
	"github.com/Sifundo-B/BankApi/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoWithdrawalsFound = errors.New("no withdrawals found for this account")
	ErrConcurrentUpdate   = repository.ErrVersionConflict
)

type WithdrawalService struct {
	db             *sql.DB
	accountRepo    repository.IAccountRepository
	withdrawalRepo repository.IWithdrawalRepository
	auditRepo      repository.IAuditRepository
	cache          ICacheClient
}

func NewWithdrawalService(
	db *sql.DB,
	accountRepo repository.IAccountRepository,
	withdrawalRepo repository.IWithdrawalRepository,
	auditRepo repository.IAuditRepository,
	cache ICacheClient,
) *WithdrawalService {
	return &WithdrawalService{
		db:             db,
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		auditRepo:      auditRepo,
		cache:          cache,
	}
}

// CreateWithdrawal processes a withdrawal in one transaction: lock the
// account, validate, record the withdrawal, decrement the balance, close a
// fixed deposit that reaches zero, and write the audit trail. The actor is
// the authenticated user id, passed in explicitly.
func (s *WithdrawalService) CreateWithdrawal(ctx context.Context, actor string, req model.CreateWithdrawalRequest) (*model.WithdrawalDTO, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": req.AccountNumber,
		"amount":         req.Amount,
		"actor":          actor,
	})
	log.Info("Starting withdrawal process")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := s.accountRepo.GetAccountForUpdate(tx, req.AccountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Warn("Account not found")
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if err := ValidateWithdrawal(account, req.Amount); err != nil {
		log.WithField("reason", err.Error()).Warn("Withdrawal validation failed")
		return nil, err
	}

	withdrawal := &model.Withdrawal{
		AccountNumber:   req.AccountNumber,
		Amount:          req.Amount,
		TransactionDate: time.Now().UTC(),
	}

	rec := audit.NewRecorder(s.auditRepo)

	// Staged before the insert, so the generated id is still pending and
	// the entry lands in the after-commit pass.
	withdrawalEntry := audit.WithdrawalCreated(withdrawal, actor)
	rec.Add(withdrawalEntry)

	before := *account
	account.AvailableBalance = account.AvailableBalance.Sub(req.Amount)
	if account.Type == model.AccountTypeFixedDeposit && account.AvailableBalance.IsZero() {
		account.Status = model.AccountStatusClosed
		log.Info("Fixed deposit account closed after full withdrawal")
	}
	rec.Add(audit.AccountChanged(&before, account, actor))

	if err := s.withdrawalRepo.CreateWithdrawal(tx, withdrawal); err != nil {
		return nil, fmt.Errorf("could not create withdrawal record: %w", err)
	}

	if err := s.accountRepo.UpdateAccount(tx, account); err != nil {
		return nil, err
	}

	if err := rec.BeforeSave(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	withdrawalEntry.ResolveKey("Id", withdrawal.ID)
	if err := rec.AfterSave(ctx); err != nil {
		return nil, err
	}

	s.invalidateAccountCache(ctx, req.AccountNumber)

	log.Info("Withdrawal completed successfully")
	return &model.WithdrawalDTO{
		ID:              withdrawal.ID,
		AccountNumber:   withdrawal.AccountNumber,
		Amount:          withdrawal.Amount,
		TransactionDate: withdrawal.TransactionDate,
	}, nil
}

// ListWithdrawalHistory retrieves the withdrawal history for an account,
// most recent first. An empty history is reported as ErrNoWithdrawalsFound.
func (s *WithdrawalService) ListWithdrawalHistory(ctx context.Context, accountNumber string) ([]*model.WithdrawalDTO, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}
	if len(withdrawals) == 0 {
		return nil, ErrNoWithdrawalsFound
	}
	return withdrawals, nil
}

func (s *WithdrawalService) invalidateAccountCache(ctx context.Context, accountNumber string) {
	if s.cache == nil {
		return
	}
	// NOTE: holder-name list keys are left to expire via TTL; the holder's
	// name is not in scope here.
	s.cache.Del(ctx, accountCacheKey(accountNumber))
}
