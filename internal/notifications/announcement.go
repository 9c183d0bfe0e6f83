package notifications

import (
	"fmt"
	"strings"

	"github.com/01speed1/skg-bot/internal/race"
)

const (
	announcementTitle       = "🏎🏁 Proxima carrera F1 🏎🏁"
	announcementDescription = "¡Prepárate!, porque falta poco"
)

// Builder renders races into announcements. The zero value builds messages
// without a role mention.
type Builder struct {
	roleID string
}

// NewBuilder returns a Builder that mentions roleID. An empty roleID disables
// the mention.
func NewBuilder(roleID string) *Builder {
	return &Builder{roleID: roleID}
}

// Build renders the announcement for r with days remaining. An unmapped
// country leaves the image and thumbnail empty.
func (b *Builder) Build(r race.Race, days int) Announcement {
	a := b.render(r, days)
	if b != nil && b.roleID != "" {
		a.MentionRoleID = b.roleID
		a.Content = fmt.Sprintf("Oigan <@&%s>, ahi les aviso, que viene el FIUUUMMMMM!!!", b.roleID)
	} else {
		a.Content = "Oigan, ahi les aviso, que viene el FIUUUMMMMM!!!"
	}
	return a
}

// Preview renders the same announcement with no mention content, for replies
// to chat commands and the status API.
func (b *Builder) Preview(r race.Race, days int) Announcement {
	return b.render(r, days)
}

func (b *Builder) render(r race.Race, days int) Announcement {
	flag := FlagURL(r.Circuit.Location.Country)

	fields := []Field{
		{Name: "Carrera", Value: r.Name, Inline: true},
		{Name: "Circuito", Value: r.Circuit.Name, Inline: true},
		{Name: "Nombre del circuito", Value: r.Circuit.Name},
		{Name: "Días restantes", Value: DaysPhrase(days), Inline: true},
	}
	if where := locationValue(r.Circuit.Location); where != "" {
		fields = append(fields, Field{Name: "Ubicación", Value: where})
	}

	return Announcement{
		Title:        announcementTitle,
		Description:  announcementDescription,
		URL:          r.URL,
		Color:        announcementColor,
		Fields:       fields,
		ImageURL:     flag,
		ThumbnailURL: flag,
	}
}

// DaysPhrase formats a countdown as shown in the announcement.
func DaysPhrase(days int) string {
	return fmt.Sprintf("%d dia(s)", days)
}

// MapsURL links to the circuit coordinates, or "" when either is missing.
func MapsURL(lat, long string) string {
	if lat == "" || long == "" {
		return ""
	}
	return fmt.Sprintf(mapsURLTemplate, lat, long)
}

func locationValue(loc race.Location) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{loc.Locality, loc.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	label := strings.Join(parts, ", ")
	maps := MapsURL(loc.Latitude, loc.Longitude)
	switch {
	case label == "":
		return maps
	case maps == "":
		return label
	default:
		return fmt.Sprintf("[%s](%s)", label, maps)
	}
}
