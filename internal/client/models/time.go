package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// naive layouts emitted by the backend: ISO 8601 without a zone designator,
// always meaning UTC.
const (
	naiveLayout = "2006-01-02T15:04:05.999999999"
	dateLayout  = "2006-01-02"
)

// Time wraps time.Time to tolerate the backend's timestamp format. The
// server serializes naive UTC datetimes ("2026-01-02T15:04:05.123456"),
// which the standard RFC 3339 decoder rejects.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(naiveLayout, s)
	if err != nil {
		return fmt.Errorf("parse time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes RFC 3339 in UTC, which the backend accepts and
// normalizes.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// NewTime is a convenience constructor used by callers building requests.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Date wraps time.Time for date-only fields like a date of birth.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}
