package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableString converts a sql.NullString into a *string,
// returning nil for NULL or empty values.
func parseNullableString(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// nullableStringToValue converts a *string to a value suitable for
// SQLite storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
