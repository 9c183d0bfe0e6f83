package notifications

import "fmt"

// countryCodes maps country names as they appear in the feed to ISO 3166-1
// alpha-2 codes used by flagcdn. Read-only after init.
var countryCodes = map[string]string{
	"Afghanistan":   "af",
	"Albania":       "al",
	"Algeria":       "dz",
	"Argentina":     "ar",
	"Australia":     "au",
	"Austria":       "at",
	"Azerbaijan":    "az",
	"Bahrain":       "bh",
	"Belgium":       "be",
	"Brazil":        "br",
	"Canada":        "ca",
	"China":         "cn",
	"France":        "fr",
	"Germany":       "de",
	"Hungary":       "hu",
	"India":         "in",
	"Italy":         "it",
	"Japan":         "jp",
	"Korea":         "kr",
	"Malaysia":      "my",
	"Mexico":        "mx",
	"Monaco":        "mc",
	"Morocco":       "ma",
	"Netherlands":   "nl",
	"Portugal":      "pt",
	"Qatar":         "qa",
	"Russia":        "ru",
	"Saudi Arabia":  "sa",
	"Singapore":     "sg",
	"South Africa":  "za",
	"Spain":         "es",
	"Sweden":        "se",
	"Switzerland":   "ch",
	"Turkey":        "tr",
	"UAE":           "ae",
	"UK":            "gb",
	"USA":           "us",
	"United States": "us",
	"Vietnam":       "vn",
}

// CountryCode returns the two-letter code for a feed country name.
func CountryCode(country string) (string, bool) {
	code, ok := countryCodes[country]
	return code, ok
}

// FlagURL returns the flag image for a feed country name, or "" when the
// country is not mapped.
func FlagURL(country string) string {
	code, ok := CountryCode(country)
	if !ok {
		return ""
	}
	return fmt.Sprintf(flagURLTemplate, code)
}
