package repository

import (
	"database/sql"
	"errors"

	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/model"

	"github.com/sirupsen/logrus"
)

// ErrVersionConflict is returned when an account update loses the race
// against a concurrent writer (row_version no longer matches).
var ErrVersionConflict = errors.New("account was modified by another transaction")

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	GetAccountsByHolderName(name string) ([]*model.AccountDTO, error)
	GetAllAccounts() ([]*model.AccountDTO, error)
	GetAccountByNumber(accountNumber string) (*model.AccountDTO, error)
	GetAccountForUpdate(tx *sql.Tx, accountNumber string) (*model.Account, error)
	UpdateAccount(tx *sql.Tx, account *model.Account) error
	CreateAccountHolder(tx *sql.Tx, holder *model.AccountHolder) error
	CreateAccount(tx *sql.Tx, account *model.Account) error
	CountAccountHolders() (int, error)
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountProjection = `
	SELECT a.account_number, a.type, a.status, a.available_balance,
	       h.first_name, h.last_name, h.id_number, h.email, h.mobile_number
	FROM accounts a
	JOIN account_holders h ON h.id = a.account_holder_id`

func scanAccountDTO(s interface{ Scan(...interface{}) error }) (*model.AccountDTO, error) {
	var dto model.AccountDTO
	err := s.Scan(
		&dto.AccountNumber, &dto.Type, &dto.Status, &dto.AvailableBalance,
		&dto.AccountHolder.FirstName, &dto.AccountHolder.LastName,
		&dto.AccountHolder.IDNumber, &dto.AccountHolder.Email,
		&dto.AccountHolder.MobileNumber,
	)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// GetAccountsByHolderName retrieves all accounts whose holder's full name
// matches exactly (first name, single space, last name).
func (r *AccountRepository) GetAccountsByHolderName(name string) ([]*model.AccountDTO, error) {
	log := logger.Log.WithField("holder_name", name)
	log.Info("Executing query to get accounts by holder name")

	query := accountProjection + ` WHERE h.first_name || ' ' || h.last_name = $1`
	rows, err := r.DB.Query(query, name)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for accounts by holder name")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.AccountDTO
	for rows.Next() {
		dto, err := scanAccountDTO(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, dto)
	}
	return accounts, rows.Err()
}

// GetAllAccounts retrieves all accounts. For admin and banker use only.
func (r *AccountRepository) GetAllAccounts() ([]*model.AccountDTO, error) {
	log := logger.Log
	log.Info("Executing query to get all accounts")

	rows, err := r.DB.Query(accountProjection)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all accounts")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.AccountDTO
	for rows.Next() {
		dto, err := scanAccountDTO(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, dto)
	}
	return accounts, rows.Err()
}

// GetAccountByNumber retrieves a single account projection.
// Returns sql.ErrNoRows when the account does not exist.
func (r *AccountRepository) GetAccountByNumber(accountNumber string) (*model.AccountDTO, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account by number")

	query := accountProjection + ` WHERE a.account_number = $1`
	dto, err := scanAccountDTO(r.DB.QueryRow(query, accountNumber))
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get account by number query")
		}
		return nil, err
	}
	return dto, nil
}

// GetAccountForUpdate locks the account row for the duration of tx.
func (r *AccountRepository) GetAccountForUpdate(tx *sql.Tx, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account for update")

	account := &model.Account{}
	query := `SELECT account_number, account_holder_id, type, status, available_balance, row_version
		FROM accounts WHERE account_number = $1 FOR UPDATE`
	err := tx.QueryRow(query, accountNumber).Scan(
		&account.AccountNumber, &account.AccountHolderID, &account.Type,
		&account.Status, &account.AvailableBalance, &account.RowVersion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

// UpdateAccount writes the account's mutable fields guarded by row_version.
// A stale version updates nothing and returns ErrVersionConflict.
func (r *AccountRepository) UpdateAccount(tx *sql.Tx, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"status":         account.Status,
		"balance":        account.AvailableBalance,
	})
	log.Info("Executing query to update account")

	query := `UPDATE accounts
		SET status = $1, available_balance = $2, row_version = row_version + 1
		WHERE account_number = $3 AND row_version = $4`
	res, err := tx.Exec(query, account.Status, account.AvailableBalance, account.AccountNumber, account.RowVersion)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account query")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Warn("Concurrent modification detected on account update")
		return ErrVersionConflict
	}
	account.RowVersion++
	return nil
}

// CreateAccountHolder inserts a new account holder within tx.
func (r *AccountRepository) CreateAccountHolder(tx *sql.Tx, holder *model.AccountHolder) error {
	log := logger.Log.WithFields(logrus.Fields{
		"first_name": holder.FirstName,
		"last_name":  holder.LastName,
	})
	log.Info("Executing query to create account holder")

	query := `INSERT INTO account_holders
		(user_id, first_name, last_name, date_of_birth, id_number, residential_address, mobile_number, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := tx.QueryRow(query,
		holder.UserID, holder.FirstName, holder.LastName, holder.DateOfBirth,
		holder.IDNumber, holder.ResidentialAddress, holder.MobileNumber, holder.Email,
	).Scan(&holder.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account holder query")
		return err
	}
	return nil
}

// CreateAccount inserts a new account within tx.
func (r *AccountRepository) CreateAccount(tx *sql.Tx, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"type":           account.Type,
	})
	log.Info("Executing query to create account")

	query := `INSERT INTO accounts (account_number, account_holder_id, type, status, available_balance, row_version)
		VALUES ($1, $2, $3, $4, $5, 1)`
	_, err := tx.Exec(query,
		account.AccountNumber, account.AccountHolderID, account.Type, account.Status, account.AvailableBalance,
	)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	account.RowVersion = 1
	return nil
}

// CountAccountHolders reports how many holders exist. Used by seeding to
// decide whether the database is empty.
func (r *AccountRepository) CountAccountHolders() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM account_holders`).Scan(&count)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to count account holders")
		return 0, err
	}
	return count, nil
}
