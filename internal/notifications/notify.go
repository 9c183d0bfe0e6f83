// Package notifications decides when a race countdown is announced and builds
// the announcement.
//
// Pipeline: fetch calendar → select next race → countdown → threshold policy →
// build announcement → send. Every stage short-circuits into "skip this cycle"
// and nothing is kept between cycles.
package notifications

import (
	"errors"

	"github.com/01speed1/skg-bot/internal/race"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

// Countdown day-counts that trigger an announcement.
var thresholds = [...]int{7, 5, 3, 1}

const (
	announcementColor = 0xff0000
	flagURLTemplate   = "https://flagcdn.com/h120/%s.png"
	mapsURLTemplate   = "https://www.google.com/maps/?q=%s,%s"
)

var (
	// ErrNoUpcomingRace means the calendar has no race after today.
	ErrNoUpcomingRace = errors.New("no upcoming race")
	// ErrNoSender is returned when a send is needed but no sender is wired.
	ErrNoSender = errors.New("no sender configured")
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Field is one labeled value in an announcement.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Announcement is the rendered message, independent of the chat platform.
type Announcement struct {
	Content       string  `json:"content"`
	MentionRoleID string  `json:"mention_role_id,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	URL           string  `json:"url,omitempty"`
	Color         int     `json:"color"`
	Fields        []Field `json:"fields"`
	ImageURL      string  `json:"image_url,omitempty"`
	ThumbnailURL  string  `json:"thumbnail_url,omitempty"`
}

// HasImage reports whether a flag image was resolved.
func (a Announcement) HasImage() bool {
	return a.ImageURL != ""
}

// Outcome records what one evaluation decided.
type Outcome struct {
	Today         race.Date  `json:"today"`
	Race          *race.Race `json:"race,omitempty"`
	RaceDate      race.Date  `json:"race_date,omitzero"`
	DaysRemaining int        `json:"days_remaining"`
	Notify        bool       `json:"notify"`
	Sent          bool       `json:"sent"`
	Skipped       int        `json:"skipped_invalid_dates"`
}

// Found reports whether an upcoming race was selected.
func (o Outcome) Found() bool {
	return o.Race != nil
}
