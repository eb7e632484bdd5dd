// Package offsettable holds the airport code to target-timezone offset mapping.
//
// A Table is immutable once built. Build it once at startup and pass it to
// whatever needs lookups; nothing in this package keeps a global instance.
package offsettable

import (
	"sort"

	"flight-time-overlay/internal/domain/entity"
)

// Entry is one declaration of the table
type Entry = entity.AirportOffset

// Collision records a code that was declared more than once.
// Winner is the offset kept, which is always the last declaration.
type Collision struct {
	Code     string
	Offsets  []int
	Regions  []string
	Winner   int
	Conflict bool
}

// Table maps airport codes to offset minutes
type Table struct {
	offsets    map[string]int
	collisions []Collision
}

// New builds a table from declarations in authoring order.
// A code declared twice keeps the later offset.
func New(entries []entity.AirportOffset) *Table {
	offsets := make(map[string]int, len(entries))
	seen := make(map[string]*Collision)
	var order []string

	for _, e := range entries {
		if prev, ok := offsets[e.Code]; ok {
			c, tracked := seen[e.Code]
			if !tracked {
				c = &Collision{
					Code:    e.Code,
					Offsets: []int{prev},
					Regions: []string{firstRegion(entries, e.Code)},
				}
				seen[e.Code] = c
				order = append(order, e.Code)
			}
			c.Offsets = append(c.Offsets, e.OffsetMinutes)
			c.Regions = append(c.Regions, e.Region)
			if e.OffsetMinutes != prev {
				c.Conflict = true
			}
		}
		offsets[e.Code] = e.OffsetMinutes
	}

	collisions := make([]Collision, 0, len(order))
	for _, code := range order {
		c := seen[code]
		c.Winner = offsets[code]
		collisions = append(collisions, *c)
	}

	return &Table{
		offsets:    offsets,
		collisions: collisions,
	}
}

// NewDefault builds a table from the built-in declarations
func NewDefault() *Table {
	return New(defaultEntries)
}

func firstRegion(entries []entity.AirportOffset, code string) string {
	for _, e := range entries {
		if e.Code == code {
			return e.Region
		}
	}
	return ""
}

// Lookup returns the offset for an exact, case-sensitive code
func (t *Table) Lookup(code string) (int, bool) {
	offset, ok := t.offsets[code]
	return offset, ok
}

// Len returns the number of distinct codes
func (t *Table) Len() int {
	return len(t.offsets)
}

// Codes returns every code in sorted order
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.offsets))
	for code := range t.offsets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Collisions returns the codes that were declared more than once, in the
// order their second declaration appeared.
func (t *Table) Collisions() []Collision {
	out := make([]Collision, len(t.collisions))
	copy(out, t.collisions)
	return out
}
