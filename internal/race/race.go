// Package race holds the race calendar model and the date arithmetic used to
// pick the next event: calendar dates, countdowns and next-race selection.
package race

import (
	"errors"
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// DateLayout is the calendar date format used by the schedule feed.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a race date is not a valid YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid race date")

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Location is where a circuit sits. Coordinates are kept as the decimal
// strings the feed sends.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Locality  string `json:"locality"`
	Country   string `json:"country"`
}

// Circuit is the track a race is held on.
type Circuit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Location Location `json:"location"`
}

// Race is one scheduled event, identified by Season+Round.
// Date is the raw feed value; use Day to get the parsed calendar date.
type Race struct {
	Season  string  `json:"season"`
	Round   string  `json:"round"`
	Name    string  `json:"name"`
	Date    string  `json:"date"`
	URL     string  `json:"url"`
	Circuit Circuit `json:"circuit"`
}

// Key returns the season/round identity of the race.
func (r Race) Key() string {
	return r.Season + "/" + r.Round
}

// Day parses the race date.
func (r Race) Day() (Date, error) {
	return ParseDate(r.Date)
}

// --------------------------------------------------------------------------
// Calendar dates
// --------------------------------------------------------------------------

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string. Out-of-range values such as
// 2024-02-30 are rejected rather than normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in loc. A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now.In(loc))
}

// midnight anchors the date at 00:00 UTC so day arithmetic never crosses a
// DST transition.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.midnight().Compare(o.midnight())
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.midnight().Format(DateLayout)
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD date.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysUntil returns target - today in whole days. Negative when target is in
// the past.
func DaysUntil(target, today Date) int {
	return int((target.midnight().Unix() - today.midnight().Unix()) / secondsPerDay)
}

// --------------------------------------------------------------------------
// Selection
// --------------------------------------------------------------------------

// SelectNext returns the earliest race dated strictly after today. Races with
// unparseable dates are ignored. The feed order is not trusted; on equal dates
// the first race in input order wins. ok is false when no race qualifies.
func SelectNext(races []Race, today Date) (next Race, ok bool) {
	var best Date
	for _, r := range races {
		day, err := r.Day()
		if err != nil || !day.After(today) {
			continue
		}
		if !ok || day.Before(best) {
			next, best, ok = r, day, true
		}
	}
	return next, ok
}

// Invalid returns the races whose date does not parse.
func Invalid(races []Race) []Race {
	var bad []Race
	for _, r := range races {
		if _, err := r.Day(); err != nil {
			bad = append(bad, r)
		}
	}
	return bad
}
