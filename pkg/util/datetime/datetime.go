package datetime

import (
	"fmt"
	"time"
)

// FormatDate formats time to RFC3339.
func FormatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Duration renders the elapsed time between two dates as a French phrase,
// using calendar arithmetic rather than a day count: the year and month
// components are subtracted, borrowing one year when the month difference
// is negative. A zero start date renders empty; a zero end date means now.
func Duration(start, end time.Time) string {
	if start.IsZero() {
		return ""
	}
	if end.IsZero() {
		end = time.Now()
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	if months < 0 {
		years--
		months += 12
	}

	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%d %s et %d mois", years, plural(years, "an"), months)
	case years > 0:
		return fmt.Sprintf("%d %s", years, plural(years, "an"))
	case months > 0:
		return fmt.Sprintf("%d mois", months)
	default:
		return "Moins d'un mois"
	}
}

func plural(n int, noun string) string {
	if n > 1 {
		return noun + "s"
	}
	return noun
}
