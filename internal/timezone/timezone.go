package timezone

import "time"

// The salon is a single-location business; all dates and slot labels are
// interpreted in its local timezone.
const SalonTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(SalonTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate parses a "YYYY-MM-DD" calendar day in salon time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}
