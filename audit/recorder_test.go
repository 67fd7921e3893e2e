package audit

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Sifundo-B/BankApi/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// fakeWriter records which path each audit row was persisted through.
type fakeWriter struct {
	inTx      []*model.AuditLog
	direct    []*model.AuditLog
	txErr     error
	directErr error
}

func (f *fakeWriter) Create(ctx context.Context, tx *sql.Tx, log *model.AuditLog) error {
	if f.txErr != nil {
		return f.txErr
	}
	f.inTx = append(f.inTx, log)
	return nil
}

func (f *fakeWriter) CreateWithDB(ctx context.Context, log *model.AuditLog) error {
	if f.directErr != nil {
		return f.directErr
	}
	f.direct = append(f.direct, log)
	return nil
}

func testAccount() *model.Account {
	return &model.Account{
		AccountNumber:    "1000000001",
		AccountHolderID:  1,
		Type:             model.AccountTypeSavings,
		Status:           model.AccountStatusActive,
		AvailableBalance: decimal.RequireFromString("15000.00"),
	}
}

func TestRecorderSplitsDeferredEntries(t *testing.T) {
	writer := &fakeWriter{}
	rec := NewRecorder(writer)

	before := testAccount()
	after := *before
	after.AvailableBalance = decimal.RequireFromString("14900.00")
	rec.Add(AccountChanged(before, &after, "3"))

	w := &model.Withdrawal{AccountNumber: "1000000001", Amount: decimal.RequireFromString("100.00")}
	entry := WithdrawalCreated(w, "3")
	rec.Add(entry)

	assert.NoError(t, rec.BeforeSave(context.Background(), nil))
	assert.Len(t, writer.inTx, 1, "only the resolved entry is written before commit")
	assert.Equal(t, "Account", writer.inTx[0].TableName)
	assert.Empty(t, writer.direct)

	entry.ResolveKey("Id", 9)
	assert.NoError(t, rec.AfterSave(context.Background()))
	assert.Len(t, writer.direct, 1)
	assert.Equal(t, "Withdrawal", writer.direct[0].TableName)
	assert.Equal(t, "Id=9", writer.direct[0].RecordID)
}

func TestRecorderIgnoresNilEntries(t *testing.T) {
	writer := &fakeWriter{}
	rec := NewRecorder(writer)

	account := testAccount()
	same := *account
	rec.Add(AccountChanged(account, &same, "3"))

	assert.NoError(t, rec.BeforeSave(context.Background(), nil))
	assert.NoError(t, rec.AfterSave(context.Background()))
	assert.Empty(t, writer.inTx)
	assert.Empty(t, writer.direct)
}

func TestRecorderPropagatesWriteFailures(t *testing.T) {
	t.Run("before save", func(t *testing.T) {
		writer := &fakeWriter{txErr: errors.New("insert failed")}
		rec := NewRecorder(writer)
		rec.Add(AccountCreated(testAccount(), ActorSystem))

		err := rec.BeforeSave(context.Background(), nil)
		assert.ErrorContains(t, err, "insert failed")
	})

	t.Run("after save with unresolved key", func(t *testing.T) {
		writer := &fakeWriter{}
		rec := NewRecorder(writer)
		rec.Add(WithdrawalCreated(&model.Withdrawal{AccountNumber: "1000000001", Amount: decimal.New(1, 0)}, "3"))

		assert.NoError(t, rec.BeforeSave(context.Background(), nil))
		assert.Error(t, rec.AfterSave(context.Background()), "pending key must not be silently skipped")
	})

	t.Run("after save", func(t *testing.T) {
		writer := &fakeWriter{directErr: errors.New("insert failed")}
		rec := NewRecorder(writer)
		entry := WithdrawalCreated(&model.Withdrawal{AccountNumber: "1000000001", Amount: decimal.New(1, 0)}, "3")
		rec.Add(entry)

		assert.NoError(t, rec.BeforeSave(context.Background(), nil))
		entry.ResolveKey("Id", 1)
		assert.ErrorContains(t, rec.AfterSave(context.Background()), "insert failed")
	})
}
