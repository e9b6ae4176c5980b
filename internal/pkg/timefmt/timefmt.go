// Package timefmt converts between the wire representations of event dates
// and times and their storage/display forms.
package timefmt

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateInputLayout   = "2006-01-02"
	DateDisplayLayout = "01/02/2006"
	TimeInputLayout   = "15:04"
	TimeDisplayLayout = "03:04 PM MST"
)

var ErrInvalidFormat = errors.New("invalid date/time format")

// ParseDate reads a yyyy-MM-dd calendar date.
func ParseDate(input string) (time.Time, error) {
	d, err := time.Parse(DateInputLayout, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a yyyy-MM-dd date", ErrInvalidFormat, input)
	}

	return d, nil
}

// FormatDateForDisplay renders a date as MM/dd/yyyy.
func FormatDateForDisplay(d time.Time) string {
	return d.Format(DateDisplayLayout)
}

// ParseTime reads a 24-hour HH:mm clock time. The result carries the local
// zone so display formatting picks up the zone abbreviation.
func ParseTime(input string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeInputLayout, input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a HH:mm time", ErrInvalidFormat, input)
	}

	return t, nil
}

// FormatTimeForDisplay renders a clock time on a 12-hour clock with an
// AM/PM marker and zone abbreviation, e.g. "02:30 PM EST".
func FormatTimeForDisplay(t time.Time) string {
	return t.Format(TimeDisplayLayout)
}

// ParseAndFormatTime converts a 24-hour HH:mm input straight to its
// 12-hour display form.
func ParseAndFormatTime(input string) (string, error) {
	t, err := ParseTime(input)
	if err != nil {
		return "", err
	}

	return FormatTimeForDisplay(t), nil
}
