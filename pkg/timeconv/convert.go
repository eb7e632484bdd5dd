// Package timeconv turns a displayed flight time at some airport into the
// equivalent wall-clock time in the target timezone.
//
// All arithmetic is a fixed-offset shift on a 24-hour clock. There is no
// date carry and no DST handling.
package timeconv

import (
	"fmt"
	"strings"

	"flight-time-overlay/pkg/logger"
)

const minutesPerDay = 24 * 60

// DefaultTargetLabel is the label printed after converted times
const DefaultTargetLabel = "JST"

// ResultKind is the variant of a ConversionResult
type ResultKind int

const (
	// Unresolvable means the caller must leave the original text alone
	Unresolvable ResultKind = iota
	// Converted carries a formatted "HH:MM (LABEL)" string
	Converted
	// AlreadyEquivalent means the airport shares the target's clock
	AlreadyEquivalent
)

func (k ResultKind) String() string {
	switch k {
	case Converted:
		return "converted"
	case AlreadyEquivalent:
		return "already_equivalent"
	default:
		return "unresolvable"
	}
}

// EquivalentPolicy decides what happens when an airport's offset is zero
type EquivalentPolicy int

const (
	// SuppressEquivalent returns AlreadyEquivalent with no text to show
	SuppressEquivalent EquivalentPolicy = iota
	// RenderEquivalentLabel returns the original time with an equivalence marker
	RenderEquivalentLabel
)

// ConversionResult is what Convert hands back to the page scanner
type ConversionResult struct {
	Kind ResultKind
	// Text is empty for Unresolvable and for a suppressed AlreadyEquivalent
	Text string
	// Reason is ErrUnknownAirportCode or ErrUnparseableTime when Kind is Unresolvable
	Reason        error
	OffsetMinutes int
}

// HasText reports whether there is something to inject next to the original time
func (r ConversionResult) HasText() bool {
	return r.Text != ""
}

// OffsetLookup is the read side of an offset table
type OffsetLookup interface {
	Lookup(code string) (int, bool)
}

// Settings configures a Converter
type Settings struct {
	TargetLabel      string
	EquivalentPolicy EquivalentPolicy
	// EquivalentMarker is printed inside the parentheses for offset-zero airports,
	// before the target label. Defaults to "=".
	EquivalentMarker string
	// Debug turns on per-call tracing. It never changes results.
	Debug bool
}

// Converter converts displayed times using an injected offset table
type Converter struct {
	table    OffsetLookup
	settings Settings
	logger   logger.Logger
}

// NewConverter creates a converter. A nil logger disables tracing.
func NewConverter(table OffsetLookup, settings Settings, log logger.Logger) *Converter {
	if settings.TargetLabel == "" {
		settings.TargetLabel = DefaultTargetLabel
	}
	if settings.EquivalentMarker == "" {
		settings.EquivalentMarker = "="
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Converter{
		table:    table,
		settings: settings,
		logger:   log,
	}
}

// Settings returns the settings the converter was built with
func (c *Converter) Settings() Settings {
	return c.settings
}

// Convert maps a displayed time at an airport to the target timezone.
// It never panics and never fails: every input lands on one of the three kinds.
func (c *Converter) Convert(timeText, code string) ConversionResult {
	offset, ok := c.table.Lookup(code)
	if !ok {
		c.trace("Unknown airport code", "airport", code)
		return ConversionResult{Kind: Unresolvable, Reason: ErrUnknownAirportCode}
	}

	parsed, err := ParseTime(timeText)
	if err != nil {
		c.trace("Could not parse time", "time", timeText, "airport", code)
		return ConversionResult{Kind: Unresolvable, Reason: err, OffsetMinutes: offset}
	}

	if offset == 0 {
		result := ConversionResult{Kind: AlreadyEquivalent}
		if c.settings.EquivalentPolicy == RenderEquivalentLabel {
			result.Text = fmt.Sprintf("%s (%s %s)", strings.TrimSpace(timeText), c.settings.EquivalentMarker, c.settings.TargetLabel)
		}
		c.trace("Airport already on target clock", "time", timeText, "airport", code, "text", result.Text)
		return result
	}

	shifted, _ := ApplyOffset(parsed, offset)
	text := FormatTime(shifted, c.settings.TargetLabel)
	c.trace("Converted time", "time", timeText, "airport", code, "offset", offset, "text", text)

	return ConversionResult{Kind: Converted, Text: text, OffsetMinutes: offset}
}

func (c *Converter) trace(msg string, keysAndValues ...interface{}) {
	if c.settings.Debug {
		c.logger.Debug(msg, keysAndValues...)
	}
}

// ApplyOffset shifts a clock reading by subtracting offsetMinutes and wraps the
// result onto a 24-hour clock. The second return value is the pre-wrap total in
// minutes: below 0 means the previous day, 1440 or more means the next day.
func ApplyOffset(pt ParsedTime, offsetMinutes int) (ParsedTime, int) {
	total := pt.Hours*60 + pt.Minutes - offsetMinutes
	wrapped := ((total % minutesPerDay) + minutesPerDay) % minutesPerDay

	return ParsedTime{Hours: wrapped / 60, Minutes: wrapped % 60}, total
}

// DayShift derives the calendar-day change from a pre-wrap total
func DayShift(total int) int {
	if total < 0 {
		return -((-total + minutesPerDay - 1) / minutesPerDay)
	}
	return total / minutesPerDay
}

// FormatTime renders "HH:MM (LABEL)" on a 24-hour clock
func FormatTime(pt ParsedTime, label string) string {
	return fmt.Sprintf("%02d:%02d (%s)", pt.Hours, pt.Minutes, label)
}
