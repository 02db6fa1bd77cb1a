package models

import "time"

// DateLayout is the wire format of date-only filter values.
const DateLayout = "2006-01-02"

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	Type     *TransactionType
	Category *Category
	DateFrom *time.Time // inclusive, compared by calendar date
	DateTo   *time.Time // inclusive, compared by calendar date
}

// IsEmpty reports whether no predicate is set.
func (f *TransactionFilter) IsEmpty() bool {
	return f == nil || (f.Type == nil && f.Category == nil && f.DateFrom == nil && f.DateTo == nil)
}

// Validate rejects unknown types and categories and a date range whose start lies after its end.
func (f *TransactionFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Type != nil && !f.Type.IsValid() {
		return ErrInvalidType
	}
	if f.Category != nil && !f.Category.IsValid() {
		return ErrInvalidCategory
	}
	if f.DateFrom != nil && f.DateTo != nil && DateOnly(*f.DateFrom).After(DateOnly(*f.DateTo)) {
		return ErrInvalidDateRange
	}
	return nil
}

// DateOnly drops the time-of-day of t, keeping the calendar date as seen in t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
