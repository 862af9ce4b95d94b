package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonthKey = errors.New("month key must be in YYYY-MM format")

// MonthKey identifies a calendar month in "YYYY-MM" form. It is the natural
// partition key for all spending aggregation: every transaction with a booking
// date belongs to exactly one MonthKey.
type MonthKey string

// NewMonthKey builds a MonthKey from a point in time.
func NewMonthKey(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

// ParseMonthKey validates and returns a MonthKey from its string form.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", ErrInvalidMonthKey
	}
	return MonthKey(s), nil
}

// Start returns midnight UTC on the first day of the month.
func (m MonthKey) Start() time.Time {
	t, _ := time.Parse("2006-01", string(m))
	return t
}

// End returns the last instant of the month.
func (m MonthKey) End() time.Time {
	return m.Start().AddDate(0, 1, 0).Add(-time.Second)
}

// Previous returns the immediately preceding calendar month.
func (m MonthKey) Previous() MonthKey {
	return NewMonthKey(m.Start().AddDate(0, -1, 0))
}

// Days returns the number of calendar days in the month.
func (m MonthKey) Days() int {
	start := m.Start()
	return start.AddDate(0, 1, -1).Day()
}

// Contains reports whether t falls inside the month.
func (m MonthKey) Contains(t time.Time) bool {
	return NewMonthKey(t.UTC()) == m
}

// Month returns the time.Month of the key.
func (m MonthKey) Month() time.Month {
	return m.Start().Month()
}

// Year returns the calendar year of the key.
func (m MonthKey) Year() int {
	return m.Start().Year()
}

func (m MonthKey) String() string {
	return string(m)
}

// Label renders a day of this month for chart axes, e.g. "1 Mar".
func (m MonthKey) Label(day int) string {
	return fmt.Sprintf("%d %s", day, m.Start().Format("Jan"))
}
