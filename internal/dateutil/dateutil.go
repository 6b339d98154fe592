// Package dateutil formats JOBL date strings for display.
//
// JOBL dates are "YYYY", "YYYY-MM", or "YYYY-MM-DD". Anything else (including
// free-form values like "Present") passes through unchanged so layouts can
// compose dates with literals without surprises.
package dateutil

import "time"

// Display returns a human-readable form of a JOBL date string:
//
//	"2020"       -> "2020"
//	"2020-03"    -> "Mar 2020"
//	"2020-03-15" -> "Mar 15, 2020"
//
// Unparseable input is returned as-is.
func Display(s string) string {
	switch len(s) {
	case len("2006-01"):
		if t, err := time.Parse("2006-01", s); err == nil {
			return t.Format("Jan 2006")
		}
	case len("2006-01-02"):
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}
