package normalize

import (
	"regexp"
	"strings"
	"time"
)

// Timestamp encodings observed from the pipeline API, probed in order.
// Zone-less layouts are anchored to UTC.
var instantLayouts = []struct {
	layout   string
	zoneless bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04:05.999999999", true},
	{"2006-01-02 15:04", true},
	{time.RFC1123, false},
	{time.RFC1123Z, false},
	{"Mon, 2 Jan 2006 15:04:05 MST", false},
	{"Mon, 2 Jan 2006 15:04:05 -0700", false},
	{"2 Jan 2006 15:04:05 MST", false},
	{"2006-01-02", true},
}

var weekdaySuffixRe = regexp.MustCompile(`\s*\([A-Za-z]{3}\)$`)

// ParseInstant converts one of the upstream timestamp encodings to a UTC
// instant: ISO-8601 with or without zone, "YYYY-MM-DD HH:mm:ss" with an
// optional trailing "(Mon)" weekday tag, RFC-2822, or a bare date.
// Empty or unparseable input falls back to the current instant; the
// second return is false when that substitution happened.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	s = weekdaySuffixRe.ReplaceAllString(s, "")
	if s == "" {
		return time.Now().UTC(), false
	}
	for _, l := range instantLayouts {
		var t time.Time
		var err error
		if l.zoneless {
			t, err = time.ParseInLocation(l.layout, s, time.UTC)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Now().UTC(), false
}

var epochRe = regexp.MustCompile(`^\d{10,13}(\.\d+)?$`)

// epochInstant interprets a raw numeric timestamp as Unix seconds, or
// milliseconds when the magnitude says so.
func epochInstant(f float64) time.Time {
	if f >= 1e12 {
		return time.UnixMilli(int64(f)).UTC()
	}
	return time.Unix(int64(f), 0).UTC()
}
