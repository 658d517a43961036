package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCommand is the structured log field key for the running cli command.
	FieldCommand = "command"
	// FieldCatalog is the structured log field key for the catalog source.
	FieldCatalog = "catalog"
)

const bundledCatalog = "bundled"

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

// WithFields attaches the provided fields to the logger, defaulting to a
// no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the command and catalog source fields. An empty
// catalog path means the bundled dataset.
func CommonFields(command, catalogPath string) []zap.Field {
	if strings.TrimSpace(catalogPath) == "" {
		catalogPath = bundledCatalog
	}
	return StringFields(
		StringField{Key: FieldCommand, Value: command},
		StringField{Key: FieldCatalog, Value: catalogPath},
	)
}

// WithCommonFields attaches the common fields to the provided logger.
func WithCommonFields(logger *zap.Logger, command, catalogPath string) *zap.Logger {
	return WithFields(logger, CommonFields(command, catalogPath)...)
}
