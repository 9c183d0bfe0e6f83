package notifications

import (
	"context"

	"github.com/01speed1/skg-bot/internal/race"
)

//go:generate mockgen -source=source.go -destination=mock_source.go -package=notifications

// RaceSource provides the current race calendar. Each call is a fresh fetch.
type RaceSource interface {
	FetchRaces(ctx context.Context) ([]race.Race, error)
}
