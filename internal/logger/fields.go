package logger

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldEntity is the structured log field key for the entity kind (candidate, offer).
	FieldEntity = "entity"
	// FieldEntityID is the structured log field key for the entity identifier.
	FieldEntityID = "entity_id"
	// FieldOperation is the structured log field key for the API operation.
	FieldOperation = "op"
	// FieldRequestID is the structured log field key for the outgoing request id.
	FieldRequestID = "request_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// EntityFields describes the entity an operation works on. A non-positive id is omitted.
func EntityFields(entity string, id int) []zap.Field {
	value := ""
	if id > 0 {
		value = strconv.Itoa(id)
	}

	return StringFields(
		StringField{Key: FieldEntity, Value: entity},
		StringField{Key: FieldEntityID, Value: value},
	)
}

// RequestFields returns the fields logged around an API call followed by extra.
func RequestFields(op, requestID string, extra ...zap.Field) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldOperation, Value: op},
		StringField{Key: FieldRequestID, Value: requestID},
	)

	return append(fields, extra...)
}
