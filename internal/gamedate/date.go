package gamedate

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the date layout used by the stats API and the playback URL.
const ISOLayout = "2006-01-02"

// KickoffLayout renders times like "7:05 PM" with no leading zero on the hour.
const KickoffLayout = "3:04 PM"

// layouts accepted by Parse, tried in order
var layouts = []string{
	ISOLayout,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"Jan 2 2006",
	"Jan 02 2006",
	"January 2 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Parse parses a user-supplied date into a civil date (midnight UTC).
// Supports formats: "2019-10-05", "2019/10/05", "10/05/2019", "10/5/19",
// "Oct 5 2019", "October 5, 2019"
func Parse(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return Civil(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q (expected YYYY-MM-DD)", text)
}

// Civil drops the clock and zone of t, keeping the calendar date as seen in t's
// own location.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) time.Time {
	return Civil(now)
}

// Resolve returns the date to look up: the parsed override when one is given,
// otherwise today's local calendar date.
func Resolve(override string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(override) == "" {
		return Today(now), nil
	}
	return Parse(override)
}

// Format renders a civil date as YYYY-MM-DD.
func Format(date time.Time) string {
	return date.Format(ISOLayout)
}

// Kickoff renders a game start time in loc. A nil loc means time.Local.
func Kickoff(start time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return start.In(loc).Format(KickoffLayout)
}
