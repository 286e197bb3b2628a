package pipeline

import "time"

// AllowedSkew is the tolerated distance between the request timestamp and
// server time, inclusive at both ends. Fixed, not configurable.
const AllowedSkew = 5 * time.Minute

// Accepted timestamp shapes. Zone-less values are assumed UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a submitted timestamp string into a UTC instant.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// CheckFreshness parses the raw timestamp and bounds it against server time.
// Returns the parsed UTC instant for use by the signature step.
func CheckFreshness(raw string, now time.Time) (time.Time, *Rejection) {
	ts, ok := ParseTimestamp(raw)
	if !ok {
		return time.Time{}, &Rejection{ReasonMalformedTimestamp, msgMalformedTimestamp}
	}
	diff := ts.Sub(now)
	if diff > AllowedSkew || diff < -AllowedSkew {
		return time.Time{}, &Rejection{ReasonExpired, msgExpired}
	}
	return ts, nil
}
