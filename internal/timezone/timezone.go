package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Riyadh"

const dateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// IsPastDate reports whether a YYYY-MM-DD date lies before the day of now in
// tz. Dates that do not parse are not considered past.
func IsPastDate(date string, tz string, now time.Time) bool {
	loc := Location(tz)

	d, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return false
	}

	y, m, day := now.In(loc).Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, loc)
	return d.Before(today)
}
