package timezone

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInstant is returned when a timestamp cannot be parsed or an
// offset string is not of the form "+HH:MM" / "-HH:MM".
var ErrInvalidInstant = errors.New("invalid instant")

// Region is the single fixed-offset timezone all wall-clock display and
// schedule comparison happens in. The target region has no daylight-saving
// transitions, so a fixed offset is sufficient.
type Region struct {
	loc *time.Location
}

// NewRegion builds a Region from an offset string like "+04:00".
func NewRegion(offset string) (Region, error) {
	seconds, err := parseOffset(offset)
	if err != nil {
		return Region{}, err
	}
	name := "UTC" + offset
	return Region{loc: time.FixedZone(name, seconds)}, nil
}

func parseOffset(offset string) (int, error) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return 0, fmt.Errorf("%w: bad offset %q", ErrInvalidInstant, offset)
	}
	var hours, mins int
	if _, err := fmt.Sscanf(offset[1:], "%02d:%02d", &hours, &mins); err != nil {
		return 0, fmt.Errorf("%w: bad offset %q", ErrInvalidInstant, offset)
	}
	if hours > 14 || mins > 59 {
		return 0, fmt.Errorf("%w: offset %q out of range", ErrInvalidInstant, offset)
	}
	seconds := hours*3600 + mins*60
	if offset[0] == '-' {
		seconds = -seconds
	}
	return seconds, nil
}

// Location exposes the underlying fixed zone for time.Date construction.
func (r Region) Location() *time.Location {
	return r.loc
}

// ToRegional converts an absolute instant to regional wall-clock time.
func (r Region) ToRegional(t time.Time) time.Time {
	return t.In(r.loc)
}

// ToInstant reinterprets a wall-clock time as a regional time and returns
// the corresponding absolute instant in UTC.
func (r Region) ToInstant(wall time.Time) time.Time {
	return time.Date(
		wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(),
		r.loc,
	).UTC()
}

// Today returns the current regional calendar date at midnight.
func (r Region) Today() time.Time {
	return r.DateOf(time.Now())
}

// DateOf truncates an instant to its regional calendar date (midnight).
func (r Region) DateOf(t time.Time) time.Time {
	local := t.In(r.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)
}

// At places a time-of-day on a calendar date in the regional zone.
func (r Region) At(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		r.loc,
	)
}

// ParseInstant parses an RFC3339 timestamp into an absolute instant.
func (r Region) ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, s)
	}
	return t, nil
}

// ParseDate parses a "YYYY-MM-DD" string as a regional calendar date.
func (r Region) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, r.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, s)
	}
	return t, nil
}
