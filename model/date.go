package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Custom implementation of a day-resolution date column

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to
// and from "YYYY-MM-DD" in JSON and is stored truncated to midnight
// UTC so range filters compare whole days.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	d.Time = t
	return nil
}

// Value implements the driver.Valuer interface.
// This defines how the date is stored in the database.
func (d Date) Value() (driver.Value, error) {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Scan implements the sql.Scanner interface.
// This defines how the database value is converted back into go.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("failed to scan Date, %v", value)
	}

	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("failed to scan Date, %w", err)
	}

	d.Time = t
	return nil
}

// GormDataType tells gorm which column type to migrate to
func (Date) GormDataType() string {
	return "date"
}
