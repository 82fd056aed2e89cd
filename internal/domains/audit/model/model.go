package model

import (
	"encoding/json"
	"palmera/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID        = "id"
	FieldTable     = "table_name"
	FieldOperation = "operation"
	FieldActor     = "actor"
	FieldPayload   = "payload"
	FieldCreatedAt = "created_at"
)

const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// AuditLog records a write performed against one of the integration
// tables: which table, what operation, who, and the row payload.
type AuditLog struct {
	ID        string    `db:"id"`
	TableName string    `db:"table_name"`
	Operation string    `db:"operation"`
	Actor     string    `db:"actor"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// NewEntry builds an audit row for the given write. Marshal failures
// degrade to an empty payload rather than losing the entry.
func NewEntry(table, operation, actor string, payload any) AuditLog {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("failed to marshal audit payload")

		body = []byte("{}")
	}

	return AuditLog{
		ID:        uuid.NewString(),
		TableName: table,
		Operation: operation,
		Actor:     actor,
		Payload:   body,
		CreatedAt: timezone.Now(),
	}
}
