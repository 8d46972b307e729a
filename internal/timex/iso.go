package timex

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidISO is returned by ParseISO for input it cannot read.
var ErrInvalidISO = errors.New("invalid ISO-8601 timestamp")

var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseISO reads an ISO-8601 date or date-time. A trailing "Z" is optional.
// Values carrying an offset are converted to UTC; values without one are
// taken as UTC.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "Z")
	if s == "" {
		return time.Time{}, ErrInvalidISO
	}
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidISO
}

// FormatISO renders t in UTC as YYYY-MM-DDTHH:MM:SS with a trailing "Z".
// Microseconds are appended only when non-zero.
func FormatISO(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05") + "Z"
	}
	return t.Format("2006-01-02T15:04:05.000000") + "Z"
}
