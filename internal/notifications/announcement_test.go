package notifications

import (
	"strings"
	"testing"

	"github.com/01speed1/skg-bot/internal/race"
)

func interlagos() race.Race {
	return race.Race{
		Season: "2024",
		Round:  "21",
		Name:   "São Paulo Grand Prix",
		Date:   "2024-11-03",
		URL:    "https://en.wikipedia.org/wiki/2024_S%C3%A3o_Paulo_Grand_Prix",
		Circuit: race.Circuit{
			ID:   "interlagos",
			Name: "Autódromo José Carlos Pace",
			URL:  "https://en.wikipedia.org/wiki/Interlagos_Circuit",
			Location: race.Location{
				Latitude:  "-23.7036",
				Longitude: "-46.6997",
				Locality:  "São Paulo",
				Country:   "Brazil",
			},
		},
	}
}

func fieldValue(a Announcement, name string) (string, bool) {
	for _, f := range a.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		country string
		code    string
		ok      bool
	}{
		{"Brazil", "br", true},
		{"UK", "gb", true},
		{"USA", "us", true},
		{"United States", "us", true},
		{"UAE", "ae", true},
		{"Saudi Arabia", "sa", true},
		{"Freedonia", "", false},
		{"brazil", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			code, ok := CountryCode(tt.country)
			if code != tt.code || ok != tt.ok {
				t.Errorf("CountryCode(%q) = (%q, %v), want (%q, %v)", tt.country, code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestFlagURL(t *testing.T) {
	if got := FlagURL("Brazil"); got != "https://flagcdn.com/h120/br.png" {
		t.Errorf("FlagURL(Brazil) = %q", got)
	}
	if got := FlagURL("Freedonia"); got != "" {
		t.Errorf("FlagURL(Freedonia) = %q, want empty", got)
	}
}

func TestBuilder_Build(t *testing.T) {
	a := NewBuilder("1122334455").Build(interlagos(), 7)

	if a.Title != announcementTitle || a.Description != announcementDescription {
		t.Errorf("unexpected title/description: %q / %q", a.Title, a.Description)
	}
	if a.Color != 0xff0000 {
		t.Errorf("Color = %#x", a.Color)
	}
	if !strings.Contains(a.Content, "<@&1122334455>") {
		t.Errorf("content should mention the role: %q", a.Content)
	}
	if a.MentionRoleID != "1122334455" {
		t.Errorf("MentionRoleID = %q", a.MentionRoleID)
	}
	if a.ImageURL != "https://flagcdn.com/h120/br.png" || a.ThumbnailURL != a.ImageURL {
		t.Errorf("image = %q, thumbnail = %q", a.ImageURL, a.ThumbnailURL)
	}
	if a.URL != interlagos().URL {
		t.Errorf("URL = %q", a.URL)
	}

	want := map[string]string{
		"Carrera":             "São Paulo Grand Prix",
		"Circuito":            "Autódromo José Carlos Pace",
		"Nombre del circuito": "Autódromo José Carlos Pace",
		"Días restantes":      "7 dia(s)",
		"Ubicación":           "[São Paulo, Brazil](https://www.google.com/maps/?q=-23.7036,-46.6997)",
	}
	for name, value := range want {
		got, ok := fieldValue(a, name)
		if !ok {
			t.Errorf("missing field %q", name)
			continue
		}
		if got != value {
			t.Errorf("field %q = %q, want %q", name, got, value)
		}
	}

	inline := map[string]bool{}
	for _, f := range a.Fields {
		inline[f.Name] = f.Inline
	}
	if !inline["Carrera"] || !inline["Circuito"] || !inline["Días restantes"] || inline["Nombre del circuito"] {
		t.Errorf("unexpected inline layout: %v", inline)
	}
}

func TestBuilder_BuildWithoutRole(t *testing.T) {
	a := NewBuilder("").Build(interlagos(), 3)
	if strings.Contains(a.Content, "<@&") {
		t.Errorf("content should not mention a role: %q", a.Content)
	}
	if a.MentionRoleID != "" {
		t.Errorf("MentionRoleID = %q", a.MentionRoleID)
	}

	var zero Builder
	if got := zero.Build(interlagos(), 3); got.Content == "" {
		t.Error("zero Builder should still produce content")
	}
}

func TestBuilder_UnmappedCountryOmitsImage(t *testing.T) {
	r := interlagos()
	r.Circuit.Location.Country = "Freedonia"

	a := NewBuilder("1").Build(r, 1)

	if a.HasImage() || a.ThumbnailURL != "" {
		t.Errorf("expected no image, got %q / %q", a.ImageURL, a.ThumbnailURL)
	}
	if got, _ := fieldValue(a, "Carrera"); got != r.Name {
		t.Errorf("message should still be complete, Carrera = %q", got)
	}
}

func TestBuilder_Preview(t *testing.T) {
	a := NewBuilder("42").Preview(interlagos(), 5)
	if a.Content != "" || a.MentionRoleID != "" {
		t.Errorf("preview must not mention: %+v", a)
	}
	if got, _ := fieldValue(a, "Días restantes"); got != "5 dia(s)" {
		t.Errorf("Días restantes = %q", got)
	}
}

func TestLocationValue(t *testing.T) {
	tests := []struct {
		name string
		loc  race.Location
		want string
	}{
		{
			name: "label only",
			loc:  race.Location{Locality: "Suzuka", Country: "Japan"},
			want: "Suzuka, Japan",
		},
		{
			name: "coordinates only",
			loc:  race.Location{Latitude: "1", Longitude: "2"},
			want: "https://www.google.com/maps/?q=1,2",
		},
		{
			name: "nothing",
			loc:  race.Location{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := locationValue(tt.loc); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	r := interlagos()
	r.Circuit.Location = race.Location{}
	if _, ok := fieldValue(NewBuilder("").Build(r, 1), "Ubicación"); ok {
		t.Error("Ubicación should be omitted when the location is empty")
	}
}
