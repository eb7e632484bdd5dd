package timeconv

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrUnknownAirportCode means the code is not in the offset table
	ErrUnknownAirportCode = errors.New("unknown airport code")
	// ErrUnparseableTime means no time pattern matched the text
	ErrUnparseableTime = errors.New("unparseable time")
)

// ParsedTime is a wall-clock reading on a 24-hour clock
type ParsedTime struct {
	Hours   int
	Minutes int
}

// timeMatcher is one entry of the ordered pattern list
type timeMatcher struct {
	name  string
	re    *regexp.Regexp
	parse func(match []string) ParsedTime
}

// Order is priority. The first pattern that matches decides the result,
// even when its values turn out to be out of range.
var timeMatchers = []timeMatcher{
	{
		name:  "clock",
		re:    regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?`),
		parse: parseClockMatch,
	},
	{
		name:  "kanji",
		re:    regexp.MustCompile(`(\d{1,2})時(\d{1,2})分`),
		parse: parseKanjiMatch,
	},
}

// ParseTime extracts the first recognisable time from free page text
func ParseTime(text string) (ParsedTime, error) {
	for _, m := range timeMatchers {
		match := m.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		pt := m.parse(match)
		if !pt.valid() {
			return ParsedTime{}, ErrUnparseableTime
		}
		return pt, nil
	}

	return ParsedTime{}, ErrUnparseableTime
}

func parseClockMatch(match []string) ParsedTime {
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	switch strings.ToUpper(match[3]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	return ParsedTime{Hours: hours, Minutes: minutes}
}

func parseKanjiMatch(match []string) ParsedTime {
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return ParsedTime{Hours: hours, Minutes: minutes}
}

func (pt ParsedTime) valid() bool {
	return pt.Hours >= 0 && pt.Hours <= 23 && pt.Minutes >= 0 && pt.Minutes <= 59
}
