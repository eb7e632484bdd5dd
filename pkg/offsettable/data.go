package offsettable

import "flight-time-overlay/internal/domain/entity"

// Offsets are standard-time (no DST) differences against JST (UTC+9),
// local minus JST, in minutes. Summer time is not modelled anywhere.
//
// Declaration order matters: a code declared twice keeps the later value.
// VIE and CEB are declared twice on purpose so the data check keeps
// catching them; see Validate.
var defaultEntries = []entity.AirportOffset{
	// Japan
	{Code: "NRT", OffsetMinutes: 0, Region: "Japan"},
	{Code: "HND", OffsetMinutes: 0, Region: "Japan"},
	{Code: "KIX", OffsetMinutes: 0, Region: "Japan"},
	{Code: "NGO", OffsetMinutes: 0, Region: "Japan"},
	{Code: "FUK", OffsetMinutes: 0, Region: "Japan"},
	{Code: "OKA", OffsetMinutes: 0, Region: "Japan"},
	{Code: "CTS", OffsetMinutes: 0, Region: "Japan"},
	{Code: "ITM", OffsetMinutes: 0, Region: "Japan"},

	// Korea
	{Code: "ICN", OffsetMinutes: 0, Region: "Korea"},
	{Code: "GMP", OffsetMinutes: 0, Region: "Korea"},
	{Code: "PUS", OffsetMinutes: 0, Region: "Korea"},

	// Greater China
	{Code: "PEK", OffsetMinutes: -60, Region: "China"},
	{Code: "PVG", OffsetMinutes: -60, Region: "China"},
	{Code: "CAN", OffsetMinutes: -60, Region: "China"},
	{Code: "SZX", OffsetMinutes: -60, Region: "China"},
	{Code: "HKG", OffsetMinutes: -60, Region: "China"},
	{Code: "TPE", OffsetMinutes: -60, Region: "China"},

	// Southeast Asia
	{Code: "SIN", OffsetMinutes: -60, Region: "Southeast Asia"},
	{Code: "BKK", OffsetMinutes: -120, Region: "Southeast Asia"},
	{Code: "CGK", OffsetMinutes: -120, Region: "Southeast Asia"},
	{Code: "MNL", OffsetMinutes: -60, Region: "Southeast Asia"},
	{Code: "KUL", OffsetMinutes: -60, Region: "Southeast Asia"},
	{Code: "VIE", OffsetMinutes: -120, Region: "Southeast Asia"},
	{Code: "SGN", OffsetMinutes: -120, Region: "Southeast Asia"},
	{Code: "RGN", OffsetMinutes: -150, Region: "Southeast Asia"},

	// South Asia
	{Code: "DEL", OffsetMinutes: -210, Region: "South Asia"},
	{Code: "BOM", OffsetMinutes: -210, Region: "South Asia"},
	{Code: "MAA", OffsetMinutes: -210, Region: "South Asia"},
	{Code: "BLR", OffsetMinutes: -210, Region: "South Asia"},
	{Code: "HYD", OffsetMinutes: -210, Region: "South Asia"},
	{Code: "CCU", OffsetMinutes: -210, Region: "South Asia"},
	{Code: "DAC", OffsetMinutes: -180, Region: "South Asia"},
	{Code: "KTM", OffsetMinutes: -195, Region: "South Asia"},
	{Code: "CMB", OffsetMinutes: -210, Region: "South Asia"},

	// Middle East
	{Code: "DXB", OffsetMinutes: -300, Region: "Middle East"},
	{Code: "AUH", OffsetMinutes: -300, Region: "Middle East"},
	{Code: "DOH", OffsetMinutes: -360, Region: "Middle East"},
	{Code: "KWI", OffsetMinutes: -360, Region: "Middle East"},
	{Code: "RUH", OffsetMinutes: -360, Region: "Middle East"},
	{Code: "JED", OffsetMinutes: -360, Region: "Middle East"},
	{Code: "TLV", OffsetMinutes: -420, Region: "Middle East"},
	{Code: "CAI", OffsetMinutes: -420, Region: "Middle East"},
	{Code: "IST", OffsetMinutes: -360, Region: "Middle East"},

	// Europe
	{Code: "LHR", OffsetMinutes: -540, Region: "Europe"},
	{Code: "LGW", OffsetMinutes: -540, Region: "Europe"},
	{Code: "STN", OffsetMinutes: -540, Region: "Europe"},
	{Code: "CDG", OffsetMinutes: -480, Region: "Europe"},
	{Code: "ORY", OffsetMinutes: -480, Region: "Europe"},
	{Code: "FRA", OffsetMinutes: -480, Region: "Europe"},
	{Code: "MUC", OffsetMinutes: -480, Region: "Europe"},
	{Code: "FCO", OffsetMinutes: -480, Region: "Europe"},
	{Code: "BCN", OffsetMinutes: -480, Region: "Europe"},
	{Code: "MAD", OffsetMinutes: -480, Region: "Europe"},
	{Code: "AMS", OffsetMinutes: -480, Region: "Europe"},
	{Code: "BRU", OffsetMinutes: -480, Region: "Europe"},
	{Code: "ZRH", OffsetMinutes: -480, Region: "Europe"},
	{Code: "VIE", OffsetMinutes: -480, Region: "Europe"},
	{Code: "CPH", OffsetMinutes: -480, Region: "Europe"},
	{Code: "ARN", OffsetMinutes: -480, Region: "Europe"},
	{Code: "HEL", OffsetMinutes: -420, Region: "Europe"},
	{Code: "SVO", OffsetMinutes: -360, Region: "Europe"},
	{Code: "DME", OffsetMinutes: -360, Region: "Europe"},

	// North America
	{Code: "JFK", OffsetMinutes: -840, Region: "North America"},
	{Code: "LGA", OffsetMinutes: -840, Region: "North America"},
	{Code: "EWR", OffsetMinutes: -840, Region: "North America"},
	{Code: "BOS", OffsetMinutes: -840, Region: "North America"},
	{Code: "DCA", OffsetMinutes: -840, Region: "North America"},
	{Code: "IAD", OffsetMinutes: -840, Region: "North America"},
	{Code: "PHL", OffsetMinutes: -840, Region: "North America"},
	{Code: "MIA", OffsetMinutes: -840, Region: "North America"},
	{Code: "ATL", OffsetMinutes: -840, Region: "North America"},
	{Code: "ORD", OffsetMinutes: -900, Region: "North America"},
	{Code: "DFW", OffsetMinutes: -900, Region: "North America"},
	{Code: "IAH", OffsetMinutes: -900, Region: "North America"},
	{Code: "DEN", OffsetMinutes: -960, Region: "North America"},
	{Code: "LAX", OffsetMinutes: -1020, Region: "North America"},
	{Code: "SFO", OffsetMinutes: -1020, Region: "North America"},
	{Code: "SEA", OffsetMinutes: -1020, Region: "North America"},
	{Code: "PDX", OffsetMinutes: -1020, Region: "North America"},
	{Code: "LAS", OffsetMinutes: -1020, Region: "North America"},
	{Code: "SAN", OffsetMinutes: -1020, Region: "North America"},
	{Code: "YVR", OffsetMinutes: -1020, Region: "North America"},
	{Code: "YYZ", OffsetMinutes: -840, Region: "North America"},
	{Code: "YUL", OffsetMinutes: -840, Region: "North America"},
	{Code: "ANC", OffsetMinutes: -1080, Region: "North America"},
	{Code: "HNL", OffsetMinutes: -1140, Region: "North America"},
	{Code: "OGG", OffsetMinutes: -1140, Region: "North America"},

	// South America
	{Code: "GRU", OffsetMinutes: -720, Region: "South America"},
	{Code: "GIG", OffsetMinutes: -720, Region: "South America"},
	{Code: "EZE", OffsetMinutes: -720, Region: "South America"},
	{Code: "BOG", OffsetMinutes: -840, Region: "South America"},
	{Code: "LIM", OffsetMinutes: -840, Region: "South America"},
	{Code: "SCL", OffsetMinutes: -780, Region: "South America"},
	{Code: "MAO", OffsetMinutes: -780, Region: "South America"},

	// Oceania
	{Code: "SYD", OffsetMinutes: 60, Region: "Oceania"},
	{Code: "MEL", OffsetMinutes: 60, Region: "Oceania"},
	{Code: "BNE", OffsetMinutes: 60, Region: "Oceania"},
	{Code: "ADL", OffsetMinutes: 30, Region: "Oceania"},
	{Code: "PER", OffsetMinutes: -60, Region: "Oceania"},
	{Code: "AKL", OffsetMinutes: 180, Region: "Oceania"},
	{Code: "CHC", OffsetMinutes: 180, Region: "Oceania"},
	{Code: "NOU", OffsetMinutes: 120, Region: "Oceania"},
	{Code: "PPT", OffsetMinutes: -1140, Region: "Oceania"},
	{Code: "SUV", OffsetMinutes: 180, Region: "Oceania"},
	{Code: "NAN", OffsetMinutes: 180, Region: "Oceania"},
	{Code: "GUM", OffsetMinutes: 60, Region: "Oceania"},
	{Code: "TBU", OffsetMinutes: 240, Region: "Oceania"},

	// Africa
	{Code: "JNB", OffsetMinutes: -420, Region: "Africa"},
	{Code: "CPT", OffsetMinutes: -420, Region: "Africa"},
	{Code: "ADD", OffsetMinutes: -360, Region: "Africa"},
	{Code: "NBO", OffsetMinutes: -360, Region: "Africa"},
	{Code: "LOS", OffsetMinutes: -480, Region: "Africa"},
	{Code: "ALG", OffsetMinutes: -480, Region: "Africa"},
	{Code: "CMN", OffsetMinutes: -480, Region: "Africa"},
	{Code: "TUN", OffsetMinutes: -480, Region: "Africa"},

	// Philippines, city by city
	{Code: "CEB", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "DVO", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "ILO", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "BCD", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "TAG", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "CRK", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "GES", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "LGP", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "ZAM", OffsetMinutes: -60, Region: "Philippines"},
	{Code: "CDO", OffsetMinutes: -60, Region: "Philippines"},

	// Metropolitan area codes used in search URLs
	{Code: "TYOA", OffsetMinutes: 0, Region: "City codes"},
	{Code: "OSAA", OffsetMinutes: 0, Region: "City codes"},
	{Code: "CEB", OffsetMinutes: -60, Region: "City codes"},
}

// DefaultEntries returns a copy of the built-in declarations in authoring order
func DefaultEntries() []entity.AirportOffset {
	entries := make([]entity.AirportOffset, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}
