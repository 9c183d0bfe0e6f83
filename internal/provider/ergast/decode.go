package ergast

import (
	"encoding/json"
	"fmt"

	"github.com/01speed1/skg-bot/internal/race"
)

// --------------------------------------------------------------------------
// Wire types (field names follow the Ergast JSON)
// --------------------------------------------------------------------------

type response struct {
	MRData *struct {
		RaceTable *struct {
			Races *[]raceJSON `json:"Races"`
		} `json:"RaceTable"`
	} `json:"MRData"`
}

type locationJSON struct {
	Lat      string `json:"lat"`
	Long     string `json:"long"`
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type circuitJSON struct {
	CircuitID   string        `json:"circuitId"`
	URL         string        `json:"url"`
	CircuitName string        `json:"circuitName"`
	Location    *locationJSON `json:"Location"`
}

type raceJSON struct {
	Season   string       `json:"season"`
	Round    string       `json:"round"`
	URL      string       `json:"url"`
	RaceName string       `json:"raceName"`
	Circuit  *circuitJSON `json:"Circuit"`
	Date     string       `json:"date"`
}

// Decode parses a feed body into races. The date string is carried through
// unparsed so a single bad date does not reject the calendar.
func Decode(body []byte) ([]race.Race, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrMalformed, err)
	}
	if resp.MRData == nil {
		return nil, fmt.Errorf("%w: missing MRData", ErrMalformed)
	}
	if resp.MRData.RaceTable == nil {
		return nil, fmt.Errorf("%w: missing MRData.RaceTable", ErrMalformed)
	}
	if resp.MRData.RaceTable.Races == nil {
		return nil, fmt.Errorf("%w: missing MRData.RaceTable.Races", ErrMalformed)
	}

	wire := *resp.MRData.RaceTable.Races
	races := make([]race.Race, 0, len(wire))
	for i, r := range wire {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("%w: race %d: %v", ErrMalformed, i, err)
		}
		races = append(races, r.toRace())
	}
	return races, nil
}

func (r raceJSON) validate() error {
	missing := ""
	switch {
	case r.Season == "":
		missing = "season"
	case r.Round == "":
		missing = "round"
	case r.RaceName == "":
		missing = "raceName"
	case r.Date == "":
		missing = "date"
	case r.Circuit == nil:
		missing = "Circuit"
	case r.Circuit.CircuitName == "":
		missing = "Circuit.circuitName"
	case r.Circuit.Location == nil:
		missing = "Circuit.Location"
	case r.Circuit.Location.Country == "":
		missing = "Circuit.Location.country"
	}
	if missing != "" {
		return fmt.Errorf("missing required field %s", missing)
	}
	return nil
}

func (r raceJSON) toRace() race.Race {
	loc := r.Circuit.Location
	return race.Race{
		Season: r.Season,
		Round:  r.Round,
		Name:   r.RaceName,
		Date:   r.Date,
		URL:    r.URL,
		Circuit: race.Circuit{
			ID:   r.Circuit.CircuitID,
			Name: r.Circuit.CircuitName,
			URL:  r.Circuit.URL,
			Location: race.Location{
				Latitude:  loc.Lat,
				Longitude: loc.Long,
				Locality:  loc.Locality,
				Country:   loc.Country,
			},
		},
	}
}
