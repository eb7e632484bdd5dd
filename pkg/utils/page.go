package utils

import (
	"regexp"
	"strings"
)

var (
	airportCodeRegex = regexp.MustCompile(`\b[A-Z]{3}\b`)
	routeURLRegex    = regexp.MustCompile(`/flights/([A-Za-z]{3,4})/([A-Za-z]{3,4})/`)
	clockTimeRegex   = regexp.MustCompile(`\d{1,2}:\d{2}|\d{1,2}時\d{1,2}分`)
)

// ExtractAirportCode returns the first standalone 3-letter uppercase code in text
func ExtractAirportCode(text string) (string, bool) {
	code := airportCodeRegex.FindString(text)
	return code, code != ""
}

// ExtractRouteFromURL extracts departure and arrival codes from a search URL
// such as https://www.skyscanner.jp/transport/flights/tyoa/ceb/250801/
func ExtractRouteFromURL(url string) (RouteCodes, bool) {
	match := routeURLRegex.FindStringSubmatch(url)
	if len(match) < 3 {
		return RouteCodes{}, false
	}

	return RouteCodes{
		Departure: strings.ToUpper(match[1]),
		Arrival:   strings.ToUpper(match[2]),
	}, true
}

// HasClockTime is the cheap gate run before handing text to the converter.
// It accepts both the H:MM and the H時M分 forms.
func HasClockTime(text string) bool {
	return clockTimeRegex.MatchString(text)
}

// NormalizeAirportCode trims and upper-cases a code taken from page text
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
