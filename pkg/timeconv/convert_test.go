package timeconv

import (
	"testing"

	"flight-time-overlay/pkg/offsettable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLookup map[string]int

func (m mapLookup) Lookup(code string) (int, bool) {
	v, ok := m[code]
	return v, ok
}

func TestConvert_DefaultTable(t *testing.T) {
	c := NewConverter(offsettable.NewDefault(), Settings{}, nil)

	tests := []struct {
		name    string
		time    string
		airport string
		kind    ResultKind
		text    string
	}{
		{"manila evening", "19:20", "MNL", Converted, "20:20 (JST)"},
		{"bangkok morning 12h", "9:15 AM", "BKK", Converted, "11:15 (JST)"},
		{"london late crosses midnight", "18:30", "LHR", Converted, "03:30 (JST)"},
		{"los angeles", "11:00 PM", "LAX", Converted, "16:00 (JST)"},
		{"auckland early goes back a day", "01:00", "AKL", Converted, "22:00 (JST)"},
		{"kathmandu quarter hour", "10:00", "KTM", Converted, "13:15 (JST)"},
		{"kanji input", "9時5分", "SIN", Converted, "10:05 (JST)"},
		{"tokyo suppressed", "10:00", "NRT", AlreadyEquivalent, ""},
		{"unknown code", "10:00", "XXX", Unresolvable, ""},
		{"lowercase code is unknown", "10:00", "mnl", Unresolvable, ""},
		{"garbage text", "not a time", "NRT", Unresolvable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Convert(tt.time, tt.airport)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.text != "", got.HasText())
		})
	}
}

func TestConvert_UnresolvableReasons(t *testing.T) {
	c := NewConverter(offsettable.NewDefault(), Settings{}, nil)

	got := c.Convert("10:00", "XXX")
	assert.Equal(t, Unresolvable, got.Kind)
	assert.ErrorIs(t, got.Reason, ErrUnknownAirportCode)

	got = c.Convert("not a time", "MNL")
	assert.Equal(t, Unresolvable, got.Kind)
	assert.ErrorIs(t, got.Reason, ErrUnparseableTime)

	got = c.Convert("not a time", "XXX")
	assert.ErrorIs(t, got.Reason, ErrUnknownAirportCode, "lookup happens before parsing")
}

func TestConvert_EquivalentPolicy(t *testing.T) {
	table := offsettable.NewDefault()

	suppress := NewConverter(table, Settings{EquivalentPolicy: SuppressEquivalent}, nil)
	got := suppress.Convert("10:00", "HND")
	assert.Equal(t, AlreadyEquivalent, got.Kind)
	assert.False(t, got.HasText())

	render := NewConverter(table, Settings{EquivalentPolicy: RenderEquivalentLabel}, nil)
	got = render.Convert(" 10:00 ", "HND")
	assert.Equal(t, AlreadyEquivalent, got.Kind)
	assert.Equal(t, "10:00 (= JST)", got.Text)

	custom := NewConverter(table, Settings{EquivalentPolicy: RenderEquivalentLabel, EquivalentMarker: "same as", TargetLabel: "KST"}, nil)
	assert.Equal(t, "2:30 PM (same as KST)", custom.Convert("2:30 PM", "ICN").Text)

	// A zero offset still needs a parseable time
	assert.Equal(t, Unresolvable, render.Convert("soon", "HND").Kind)
}

func TestConvert_DebugDoesNotChangeResults(t *testing.T) {
	table := offsettable.NewDefault()
	quiet := NewConverter(table, Settings{}, nil)
	loud := NewConverter(table, Settings{Debug: true}, nil)

	for _, in := range [][2]string{{"19:20", "MNL"}, {"x", "MNL"}, {"10:00", "ZZZ"}, {"10:00", "NRT"}} {
		assert.Equal(t, quiet.Convert(in[0], in[1]), loud.Convert(in[0], in[1]))
	}
}

func TestNewConverter_Defaults(t *testing.T) {
	c := NewConverter(mapLookup{}, Settings{}, nil)
	assert.Equal(t, DefaultTargetLabel, c.Settings().TargetLabel)
	assert.Equal(t, "=", c.Settings().EquivalentMarker)
	assert.Equal(t, SuppressEquivalent, c.Settings().EquivalentPolicy)
}

func TestApplyOffset_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		in        ParsedTime
		offset    int
		want      ParsedTime
		wantTotal int
		dayShift  int
	}{
		{"total exactly 1440 wraps to midnight", ParsedTime{23, 0}, -60, ParsedTime{0, 0}, 1440, 1},
		{"total -1 wraps to 23:59", ParsedTime{0, 0}, 1, ParsedTime{23, 59}, -1, -1},
		{"no wrap", ParsedTime{12, 0}, 60, ParsedTime{11, 0}, 660, 0},
		{"total 1439 stays", ParsedTime{23, 59}, 0, ParsedTime{23, 59}, 1439, 0},
		{"largest negative offset", ParsedTime{23, 59}, -1439, ParsedTime{23, 58}, 2878, 1},
		{"largest positive offset", ParsedTime{0, 0}, 1439, ParsedTime{0, 1}, -1439, -1},
		{"out of bound offset still wraps", ParsedTime{1, 0}, -3000, ParsedTime{3, 0}, 3060, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := ApplyOffset(tt.in, tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.dayShift, DayShift(total))
		})
	}
}

func TestApplyOffset_RoundTrip(t *testing.T) {
	offsets := []int{-1439, -1260, -1020, -540, -195, -60, -1, 0, 1, 30, 60, 240, 1439}

	for h := 0; h <= 23; h++ {
		for m := 0; m <= 59; m++ {
			original := ParsedTime{h, m}
			for _, offset := range offsets {
				shifted, _ := ApplyOffset(original, offset)
				back, _ := ApplyOffset(shifted, -offset)
				require.Equal(t, original, back, "offset %d", offset)
			}
		}
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:05 (JST)", FormatTime(ParsedTime{0, 5}, "JST"))
	assert.Equal(t, "23:59 (UTC)", FormatTime(ParsedTime{23, 59}, "UTC"))
}

func TestResultKind_String(t *testing.T) {
	assert.Equal(t, "converted", Converted.String())
	assert.Equal(t, "already_equivalent", AlreadyEquivalent.String())
	assert.Equal(t, "unresolvable", Unresolvable.String())
}
