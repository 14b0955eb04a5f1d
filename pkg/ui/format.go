package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// TruncateString cuts a string to the given display width, appending an
// ellipsis when something was cut. Width-aware for CJK and similar runes.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// PadRight pads a string with spaces to the given display width.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// RelativeYears renders how long ago a date was, in whole years.
func RelativeYears(from, now time.Time) string {
	years := now.Year() - from.Year()
	if now.Month() < from.Month() || (now.Month() == from.Month() && now.Day() < from.Day()) {
		years--
	}
	switch {
	case years < 0:
		return "upcoming"
	case years == 0:
		return "this year"
	case years == 1:
		return "1 yr ago"
	}
	return strconv.Itoa(years) + " yrs ago"
}
