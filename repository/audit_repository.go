package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/model"
)

// IAuditRepository defines the contract for audit log persistence and
// queries. Audit rows are append-only and never themselves audited.
type IAuditRepository interface {
	Create(ctx context.Context, tx *sql.Tx, log *model.AuditLog) error
	CreateWithDB(ctx context.Context, log *model.AuditLog) error
	GetByAccountNumber(accountNumber string) ([]*model.AuditLog, error)
	GetByUser(userID string) ([]*model.AuditLog, error)
	GetByDateRange(from, to time.Time) ([]*model.AuditLog, error)
}

type AuditRepository struct {
	DB *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

const insertAuditLog = `INSERT INTO audit_logs
	(table_name, audit_type, record_id, old_values, new_values, changed_by, changed_at, ip_address)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')) RETURNING id`

// Create inserts an audit row inside the business transaction, so a
// failure here rolls the business change back with it.
func (r *AuditRepository) Create(ctx context.Context, tx *sql.Tx, log *model.AuditLog) error {
	err := tx.QueryRowContext(ctx, insertAuditLog,
		log.TableName, log.AuditType, log.RecordID, log.OldValues, log.NewValues,
		log.ChangedBy, log.ChangedAt, log.IPAddress,
	).Scan(&log.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("table_name", log.TableName).
			Error("Failed to execute create audit log query")
		return err
	}
	return nil
}

// CreateWithDB inserts an audit row outside any transaction. Used for the
// second pass that records entries whose generated keys were only known
// after the business commit.
func (r *AuditRepository) CreateWithDB(ctx context.Context, log *model.AuditLog) error {
	err := r.DB.QueryRowContext(ctx, insertAuditLog,
		log.TableName, log.AuditType, log.RecordID, log.OldValues, log.NewValues,
		log.ChangedBy, log.ChangedAt, log.IPAddress,
	).Scan(&log.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("table_name", log.TableName).
			Error("Failed to execute create audit log query")
		return err
	}
	return nil
}

func (r *AuditRepository) queryLogs(query string, args ...interface{}) ([]*model.AuditLog, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute audit log query")
		return nil, err
	}
	defer rows.Close()

	var logs []*model.AuditLog
	for rows.Next() {
		var l model.AuditLog
		var ip sql.NullString
		err := rows.Scan(&l.ID, &l.TableName, &l.AuditType, &l.RecordID,
			&l.OldValues, &l.NewValues, &l.ChangedBy, &l.ChangedAt, &ip)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan audit log row")
			return nil, err
		}
		l.IPAddress = ip.String
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

const selectAuditLogs = `SELECT id, table_name, audit_type, record_id, old_values, new_values, changed_by, changed_at, ip_address
	FROM audit_logs`

// GetByAccountNumber retrieves account audit rows whose serialized record
// id contains the account number, most recent change first.
func (r *AuditRepository) GetByAccountNumber(accountNumber string) ([]*model.AuditLog, error) {
	logger.Log.WithField("account_number", accountNumber).Info("Executing query to get audit logs by account")

	query := selectAuditLogs + `
		WHERE table_name = 'Account' AND record_id LIKE '%' || $1 || '%'
		ORDER BY changed_at DESC`
	return r.queryLogs(query, accountNumber)
}

// GetByUser retrieves all audit rows attributed to one actor.
func (r *AuditRepository) GetByUser(userID string) ([]*model.AuditLog, error) {
	logger.Log.WithField("changed_by", userID).Info("Executing query to get audit logs by user")

	query := selectAuditLogs + ` WHERE changed_by = $1 ORDER BY changed_at DESC`
	return r.queryLogs(query, userID)
}

// GetByDateRange retrieves audit rows changed within [from, to], both
// bounds inclusive.
func (r *AuditRepository) GetByDateRange(from, to time.Time) ([]*model.AuditLog, error) {
	logger.Log.WithField("from", from).WithField("to", to).Info("Executing query to get audit logs by date range")

	query := selectAuditLogs + ` WHERE changed_at >= $1 AND changed_at <= $2 ORDER BY changed_at DESC`
	return r.queryLogs(query, from, to)
}
