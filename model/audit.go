package model

import "time"

type AuditType string

const (
	AuditTypeCreate AuditType = "Create"
	AuditTypeUpdate AuditType = "Update"
	AuditTypeDelete AuditType = "Delete"
)

// AuditLog is one captured data change: field-level before/after values
// for a single entity, attributed to an actor. Rows are immutable once
// written and are never themselves audited.
type AuditLog struct {
	ID        int       `json:"id"`
	TableName string    `json:"table_name"`
	AuditType AuditType `json:"audit_type"`
	RecordID  string    `json:"record_id"`
	OldValues string    `json:"old_values"`
	NewValues string    `json:"new_values"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	IPAddress string    `json:"ip_address,omitempty"`
}
