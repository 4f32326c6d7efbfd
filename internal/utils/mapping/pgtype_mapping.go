package mapping

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ToText maps an empty string to SQL NULL.
func ToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// FromText maps SQL NULL to the empty string.
func FromText(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// ToDate maps the zero time to SQL NULL.
func ToDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// FromDate maps SQL NULL to the zero time.
func FromDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

// ToTimeOfDay converts the wall clock of t into a TIME column value.
func ToTimeOfDay(t time.Time) pgtype.Time {
	h, m, s := t.Clock()
	micros := (int64(h)*3600 + int64(m)*60 + int64(s)) * int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// FromTimeOfDay converts a TIME column value into a wall clock on the zero date in UTC.
func FromTimeOfDay(t pgtype.Time) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(t.Microseconds) * time.Microsecond)
}
