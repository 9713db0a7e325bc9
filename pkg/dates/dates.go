package dates

import "time"

// Midnight drops the time-of-day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseIn accepts the date formats the API takes: plain dates, read as
// midnight in loc, and RFC3339 timestamps, shifted into loc. Keeping every
// stored date in the one configured location is what lines them up with the
// sweep's [today, tomorrow) window. Reports false on anything else.
func ParseIn(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// GenerateBetween produces the event dates from start to end every gapDays
// days, both bounds midnight-normalized. The first element is always start;
// end is included only when the stride lands on it. Invalid input (zero
// dates, gap <= 0, inverted range) yields an empty sequence rather than an
// error: there is simply nothing to schedule.
func GenerateBetween(start, end time.Time, gapDays int) []time.Time {
	out := []time.Time{}
	if start.IsZero() || end.IsZero() || gapDays <= 0 {
		return out
	}
	s := Midnight(start)
	e := Midnight(end)
	if s.After(e) {
		return out
	}
	for cur := s; !cur.After(e); cur = cur.AddDate(0, 0, gapDays) {
		out = append(out, cur)
	}
	return out
}
