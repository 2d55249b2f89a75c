package datemath

import (
	"errors"
	"time"
)

var ErrUnrecognized = errors.New("unrecognized date expression")

// Pattern names the expression that produced a Match.
type Pattern string

const (
	PatternISO       Pattern = "iso"
	PatternSlash     Pattern = "mm/dd/yyyy"
	PatternDash      Pattern = "mm-dd-yyyy"
	PatternMonthName Pattern = "month dd"
	PatternWeek      Pattern = "week n"
)

// Match is a date found inside free text. Date is midnight in the parser's
// location; Start and End are byte offsets of the matched substring.
type Match struct {
	Date    time.Time
	Pattern Pattern
	Start   int
	End     int
}
