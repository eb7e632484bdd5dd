package entity

// AirportOffset is a single row of the offset table.
// OffsetMinutes is the local clock minus the target clock, in minutes.
type AirportOffset struct {
	Code          string
	OffsetMinutes int
	Region        string
}

// LegDirection tells whether a leg time is a departure or an arrival
type LegDirection string

const (
	Departure LegDirection = "departure"
	Arrival   LegDirection = "arrival"
)

// Leg is one time/airport pair scraped from a result card
type Leg struct {
	Direction   LegDirection
	TimeText    string
	AirportCode string
}

// Route is the departure/arrival pair detected from a search URL
type Route struct {
	Departure string
	Arrival   string
}

// Annotation is the overlay decision for a single leg
type Annotation struct {
	Leg    Leg
	Result string
	Text   string
	Reason string
	Inject bool
}

// AnnotationBatch is the result of annotating one page scan
type AnnotationBatch struct {
	Enabled        bool
	Route          *Route
	Annotations    []Annotation
	ConvertedCount int
}

// OverlayStatus mirrors what the popup asks the page for
type OverlayStatus struct {
	Enabled        bool
	Debug          bool
	ConvertedCount int64
}
