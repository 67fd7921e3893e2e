package repository

import (
	"database/sql"

	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/model"

	"github.com/sirupsen/logrus"
)

// IWithdrawalRepository defines the contract for withdrawal database
// operations. Withdrawals are append-only; there is no update or delete.
type IWithdrawalRepository interface {
	CreateWithdrawal(tx *sql.Tx, withdrawal *model.Withdrawal) error
	GetWithdrawalsByAccountNumber(accountNumber string) ([]*model.WithdrawalDTO, error)
}

type WithdrawalRepository struct {
	DB *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) *WithdrawalRepository {
	return &WithdrawalRepository{DB: db}
}

// CreateWithdrawal inserts a withdrawal within tx and fills in the
// generated id.
func (r *WithdrawalRepository) CreateWithdrawal(tx *sql.Tx, withdrawal *model.Withdrawal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": withdrawal.AccountNumber,
		"amount":         withdrawal.Amount,
	})
	log.Info("Executing query to create a new withdrawal")

	query := `INSERT INTO withdrawals (account_number, amount, transaction_date)
		VALUES ($1, $2, $3) RETURNING id`
	err := tx.QueryRow(query, withdrawal.AccountNumber, withdrawal.Amount, withdrawal.TransactionDate).
		Scan(&withdrawal.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create withdrawal query")
		return err
	}
	return nil
}

// GetWithdrawalsByAccountNumber retrieves the withdrawal history for an
// account, most recent first.
func (r *WithdrawalRepository) GetWithdrawalsByAccountNumber(accountNumber string) ([]*model.WithdrawalDTO, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get withdrawals by account number")

	query := `
		SELECT id, account_number, amount, transaction_date
		FROM withdrawals
		WHERE account_number = $1
		ORDER BY transaction_date DESC`

	rows, err := r.DB.Query(query, accountNumber)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for withdrawals by account number")
		return nil, err
	}
	defer rows.Close()

	var withdrawals []*model.WithdrawalDTO
	for rows.Next() {
		var w model.WithdrawalDTO
		if err := rows.Scan(&w.ID, &w.AccountNumber, &w.Amount, &w.TransactionDate); err != nil {
			log.WithError(err).Error("Failed to scan withdrawal row")
			return nil, err
		}
		withdrawals = append(withdrawals, &w)
	}
	return withdrawals, rows.Err()
}
