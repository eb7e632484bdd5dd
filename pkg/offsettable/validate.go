package offsettable

import (
	"fmt"
	"regexp"

	"flight-time-overlay/internal/domain/entity"
)

// MinutesPerDay bounds every offset: values must stay inside (-MinutesPerDay, MinutesPerDay)
const MinutesPerDay = 24 * 60

// IssueKind classifies a data-authoring problem
type IssueKind string

const (
	IssueConflictingDuplicate IssueKind = "conflicting_duplicate"
	IssueRedundantDuplicate   IssueKind = "redundant_duplicate"
	IssueMalformedCode        IssueKind = "malformed_code"
	IssueOffsetOutOfRange     IssueKind = "offset_out_of_range"
)

// Issue is a single validation finding
type Issue struct {
	Kind    IssueKind
	Code    string
	Message string
}

// Fatal reports whether the issue should fail a strict check.
// Redundant duplicates are harmless and only warned about.
func (i Issue) Fatal() bool {
	return i.Kind != IssueRedundantDuplicate
}

var codePattern = regexp.MustCompile(`^[A-Z]{3,4}$`)

// Validate checks declarations for authoring mistakes. It never changes
// what New builds; callers decide whether an issue is fatal.
func Validate(entries []entity.AirportOffset) []Issue {
	var issues []Issue

	for _, e := range entries {
		if !codePattern.MatchString(e.Code) {
			issues = append(issues, Issue{
				Kind:    IssueMalformedCode,
				Code:    e.Code,
				Message: fmt.Sprintf("code %q is not 3-4 uppercase letters", e.Code),
			})
		}
		if e.OffsetMinutes <= -MinutesPerDay || e.OffsetMinutes >= MinutesPerDay {
			issues = append(issues, Issue{
				Kind:    IssueOffsetOutOfRange,
				Code:    e.Code,
				Message: fmt.Sprintf("offset %d for %s is outside (-%d, %d)", e.OffsetMinutes, e.Code, MinutesPerDay, MinutesPerDay),
			})
		}
	}

	for _, c := range New(entries).Collisions() {
		kind := IssueRedundantDuplicate
		if c.Conflict {
			kind = IssueConflictingDuplicate
		}
		issues = append(issues, Issue{
			Kind: kind,
			Code: c.Code,
			Message: fmt.Sprintf("%s declared %d times (offsets %v, regions %v); keeping %d",
				c.Code, len(c.Offsets), c.Offsets, c.Regions, c.Winner),
		})
	}

	return issues
}
