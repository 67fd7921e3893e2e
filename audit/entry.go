// Package audit captures field-level before/after snapshots of entity
// changes and turns them into AuditLog rows. Change detection is explicit
// per entity type rather than reflective: each tracked entity has a
// constructor in diff.go that knows its key and persisted properties.
package audit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Sifundo-B/BankApi/model"
)

// Entry is one pending audit record for a single entity change. Entries
// whose generated key is not yet known (inserts with auto-generated ids)
// stay deferred until ResolveKey is called with the final value.
type Entry struct {
	TableName string
	Type      model.AuditType
	Actor     string
	KeyValues map[string]interface{}
	OldValues map[string]interface{}
	NewValues map[string]interface{}

	deferredKeys map[string]struct{}
}

func newEntry(table string, auditType model.AuditType, actor string) *Entry {
	return &Entry{
		TableName:    table,
		Type:         auditType,
		Actor:        actor,
		KeyValues:    make(map[string]interface{}),
		OldValues:    make(map[string]interface{}),
		NewValues:    make(map[string]interface{}),
		deferredKeys: make(map[string]struct{}),
	}
}

// deferKey marks a key property whose value is generated on insert and
// unknown until the surrounding unit of work completes.
func (e *Entry) deferKey(name string) {
	e.deferredKeys[name] = struct{}{}
}

// Deferred reports whether the entry still waits on a generated key.
func (e *Entry) Deferred() bool {
	return len(e.deferredKeys) > 0
}

// ResolveKey fills in a generated key once it is known.
func (e *Entry) ResolveKey(name string, value interface{}) {
	e.KeyValues[name] = value
	delete(e.deferredKeys, name)
}

// Log finalizes the entry into an AuditLog row. The record id is rendered
// as key=value pairs joined by commas; old/new payloads serialize to JSON
// only when non-empty, an empty change set stays an empty string.
func (e *Entry) Log() (*model.AuditLog, error) {
	if e.Deferred() {
		keys := make([]string, 0, len(e.deferredKeys))
		for k := range e.deferredKeys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("audit entry for %s has unresolved keys: %s", e.TableName, strings.Join(keys, ","))
	}

	oldValues, err := marshalValues(e.OldValues)
	if err != nil {
		return nil, fmt.Errorf("could not serialize old values for %s: %w", e.TableName, err)
	}
	newValues, err := marshalValues(e.NewValues)
	if err != nil {
		return nil, fmt.Errorf("could not serialize new values for %s: %w", e.TableName, err)
	}

	return &model.AuditLog{
		TableName: e.TableName,
		AuditType: e.Type,
		RecordID:  formatRecordID(e.KeyValues),
		OldValues: oldValues,
		NewValues: newValues,
		ChangedBy: e.Actor,
		ChangedAt: time.Now().UTC(),
	}, nil
}

func formatRecordID(keyValues map[string]interface{}) string {
	keys := make([]string, 0, len(keyValues))
	for k := range keyValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, keyValues[k]))
	}
	return strings.Join(pairs, ",")
}

func marshalValues(values map[string]interface{}) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
