package race

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func calendar() []Race {
	return []Race{
		{Season: "2024", Round: "3", Name: "Australian Grand Prix", Date: "2024-03-24"},
		{Season: "2024", Round: "4", Name: "Japanese Grand Prix", Date: "2024-04-07"},
		{Season: "2024", Round: "2", Name: "Saudi Arabian Grand Prix", Date: "2024-03-10"},
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid", input: "2024-03-24", want: Date{2024, time.March, 24}},
		{name: "leap day", input: "2024-02-29", want: Date{2024, time.February, 29}},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "day out of range", input: "2024-04-31", wantErr: true},
		{name: "with time", input: "2024-03-24T05:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToday_UsesLocation(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 03:00 UTC is still the previous evening in Bogota (UTC-5).
	now := time.Date(2024, time.March, 17, 3, 0, 0, 0, time.UTC)

	if got := Today(now, time.UTC); got.String() != "2024-03-17" {
		t.Errorf("UTC today: got %s", got)
	}
	if got := Today(now, bogota); got.String() != "2024-03-16" {
		t.Errorf("Bogota today: got %s", got)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		target string
		today  string
		want   int
	}{
		{"2024-03-24", "2024-03-17", 7},
		{"2024-03-17", "2024-03-17", 0},
		{"2024-03-10", "2024-03-17", -7},
		{"2024-03-01", "2024-02-28", 2},
		{"2025-01-01", "2024-12-31", 1},
		{"2024-11-03", "2024-10-27", 7},
		{"2600-01-01", "2024-01-01", 210380},
		{"9999-12-31", "0001-01-01", 3652058},
	}

	for _, tt := range tests {
		t.Run(tt.target+"-"+tt.today, func(t *testing.T) {
			target, today := mustDate(t, tt.target), mustDate(t, tt.today)
			if got := DaysUntil(target, today); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
			if got := DaysUntil(today, target); got != -tt.want {
				t.Errorf("swapped DaysUntil = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestSelectNext(t *testing.T) {
	tests := []struct {
		name     string
		races    []Race
		today    string
		wantOK   bool
		wantDate string
	}{
		{
			name:     "picks earliest future race regardless of order",
			races:    calendar(),
			today:    "2024-03-17",
			wantOK:   true,
			wantDate: "2024-03-24",
		},
		{
			name:     "race dated today is not selected",
			races:    calendar(),
			today:    "2024-03-24",
			wantOK:   true,
			wantDate: "2024-04-07",
		},
		{
			name:     "day after a race moves to the following one",
			races:    calendar(),
			today:    "2024-03-25",
			wantOK:   true,
			wantDate: "2024-04-07",
		},
		{
			name:   "season over",
			races:  calendar(),
			today:  "2024-04-08",
			wantOK: false,
		},
		{
			name:   "empty list",
			races:  nil,
			today:  "2024-03-17",
			wantOK: false,
		},
		{
			name: "unparseable dates are skipped",
			races: []Race{
				{Round: "1", Date: "TBD"},
				{Round: "2", Date: "2024-13-01"},
				{Round: "3", Date: "2024-05-05"},
			},
			today:    "2024-03-17",
			wantOK:   true,
			wantDate: "2024-05-05",
		},
		{
			name: "only unparseable dates",
			races: []Race{
				{Round: "1", Date: ""},
			},
			today:  "2024-03-17",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectNext(tt.races, mustDate(t, tt.today))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Date != tt.wantDate {
				t.Errorf("selected %s, want %s", got.Date, tt.wantDate)
			}
		})
	}
}

func TestSelectNext_TieKeepsInputOrder(t *testing.T) {
	races := []Race{
		{Round: "9", Date: "2024-06-09"},
		{Round: "7", Date: "2024-06-02"},
		{Round: "8", Date: "2024-06-02"},
	}
	got, ok := SelectNext(races, mustDate(t, "2024-05-30"))
	if !ok {
		t.Fatal("expected a race")
	}
	if got.Round != "7" {
		t.Errorf("tie resolved to round %s, want 7", got.Round)
	}
}

func TestSelectNext_MinimumOfAllFutureDates(t *testing.T) {
	today := mustDate(t, "2024-01-01")
	var races []Race
	for i := 40; i > 0; i -= 3 {
		races = append(races, Race{Round: "r", Date: today.AddDays(i).String()})
	}
	got, ok := SelectNext(races, today)
	if !ok {
		t.Fatal("expected a race")
	}
	want := today.AddDays(1).String()
	if got.Date != want {
		t.Errorf("selected %s, want %s", got.Date, want)
	}
}

func TestInvalid(t *testing.T) {
	races := []Race{
		{Round: "1", Date: "2024-03-02"},
		{Round: "2", Date: "03/09/2024"},
	}
	bad := Invalid(races)
	if len(bad) != 1 || bad[0].Round != "2" {
		t.Errorf("got %+v, want only round 2", bad)
	}
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Day Date `json:"day"`
	}
	b, err := json.Marshal(payload{Day: Date{2024, time.March, 24}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"day":"2024-03-24"}` {
		t.Errorf("got %s", b)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"day":"2024-04-07"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Day.String() != "2024-04-07" {
		t.Errorf("got %s", p.Day)
	}
}
