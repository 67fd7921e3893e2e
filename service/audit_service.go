package service

import (
	"context"
	"time"

	"github.com/Sifundo-B/BankApi/model"
	"github.com/Sifundo-B/BankApi/repository"
)

// AuditService serves read-only audit trail queries for auditors.
type AuditService struct {
	repo repository.IAuditRepository
}

func NewAuditService(repo repository.IAuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// GetAccountAuditLogs lists account changes whose record id contains the
// account number, most recent first.
func (s *AuditService) GetAccountAuditLogs(ctx context.Context, accountNumber string) ([]*model.AuditLog, error) {
	return s.repo.GetByAccountNumber(accountNumber)
}

// GetAuditLogsByUser lists every change attributed to one actor.
func (s *AuditService) GetAuditLogsByUser(ctx context.Context, userID string) ([]*model.AuditLog, error) {
	return s.repo.GetByUser(userID)
}

// GetAuditLogsByDateRange lists changes within the range, both bounds
// inclusive.
func (s *AuditService) GetAuditLogsByDateRange(ctx context.Context, from, to time.Time) ([]*model.AuditLog, error) {
	return s.repo.GetByDateRange(from, to)
}
