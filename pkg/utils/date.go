package utils

import (
	"database/sql"
	"time"
)

func FormatNullDate(value sql.NullTime) string {
	if !value.Valid {
		return Placeholder
	}
	return value.Time.Format(time.DateOnly)
}

func FormatNullTimestamp(value sql.NullTime) string {
	if !value.Valid {
		return Placeholder
	}
	return value.Time.Format(time.DateTime)
}

func FormatTimestamp(value *time.Time) string {
	if value == nil {
		return Placeholder
	}
	return value.Format(time.DateTime)
}
