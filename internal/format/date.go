package format

import (
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ShortDate renders a YYYY-MM-DD date as "3 Feb". Unparseable input is
// returned unchanged.
func ShortDate(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("2 Jan")
}

// DateLabel renders a transaction group heading: "Today", "Yesterday" or a
// weekday form such as "Mon, 2 Feb", relative to now.
func DateLabel(date string, now time.Time) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	today := now.Format(dateLayout)
	if date == today {
		return "Today"
	}
	if date == now.AddDate(0, 0, -1).Format(dateLayout) {
		return "Yesterday"
	}
	return d.Format("Mon, 2 Jan")
}

// MonthLabel renders a YYYY-MM month key as its short month name, "Feb".
func MonthLabel(month string) string {
	m, err := time.Parse(monthLayout, month)
	if err != nil {
		return month
	}
	return m.Format("Jan")
}

// MonthTitle renders a time as "February 2026".
func MonthTitle(t time.Time) string {
	return t.Format("January 2006")
}

// TimeOfDay renders the transaction time label, e.g. "3:04 PM".
func TimeOfDay(t time.Time) string {
	return t.Format("3:04 PM")
}
