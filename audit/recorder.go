package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sifundo-B/BankApi/model"
)

// LogWriter persists finalized audit rows. It is implemented by
// repository.AuditRepository; the split keeps this package free of SQL.
type LogWriter interface {
	Create(ctx context.Context, tx *sql.Tx, log *model.AuditLog) error
	CreateWithDB(ctx context.Context, log *model.AuditLog) error
}

// Recorder collects the audit entries of one unit of work.
//
// BeforeSave runs inside the business transaction and writes every entry
// whose keys are already known; a failure there aborts the business write,
// so committed data is never missing its audit trail. Entries waiting on
// generated keys are held back and written by AfterSave in a second
// commit, once the caller has resolved them.
type Recorder struct {
	writer   LogWriter
	entries  []*Entry
	deferred []*Entry
}

func NewRecorder(writer LogWriter) *Recorder {
	return &Recorder{writer: writer}
}

// Add stages an entry. Nil entries (no-op diffs) are ignored.
func (r *Recorder) Add(e *Entry) {
	if e == nil {
		return
	}
	r.entries = append(r.entries, e)
}

// BeforeSave finalizes and persists every non-deferred entry within tx.
func (r *Recorder) BeforeSave(ctx context.Context, tx *sql.Tx) error {
	remaining := r.entries[:0]
	for _, e := range r.entries {
		if e.Deferred() {
			r.deferred = append(r.deferred, e)
			continue
		}
		remaining = append(remaining, e)
	}
	r.entries = remaining

	for _, e := range r.entries {
		log, err := e.Log()
		if err != nil {
			return err
		}
		if err := r.writer.Create(ctx, tx, log); err != nil {
			return fmt.Errorf("could not persist audit log for %s: %w", e.TableName, err)
		}
	}
	r.entries = nil
	return nil
}

// AfterSave persists the entries deferred by BeforeSave. It must be called
// after the business transaction committed and after every deferred key
// has been resolved; an unresolved key is an error, never a silent skip.
func (r *Recorder) AfterSave(ctx context.Context) error {
	for _, e := range r.deferred {
		log, err := e.Log()
		if err != nil {
			return err
		}
		if err := r.writer.CreateWithDB(ctx, log); err != nil {
			return fmt.Errorf("could not persist deferred audit log for %s: %w", e.TableName, err)
		}
	}
	r.deferred = nil
	return nil
}
