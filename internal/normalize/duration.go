package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)

// ParseClockDuration converts a clock-style duration string (H:MM:SS or
// HH:MM:SS) to whole seconds. The second return is false when the input
// is not a clock string.
func ParseClockDuration(s string) (int64, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	h, _ := strconv.ParseInt(m[1], 10, 64)
	mm, _ := strconv.ParseInt(m[2], 10, 64)
	ss, _ := strconv.ParseInt(m[3], 10, 64)
	return h*3600 + mm*60 + ss, true
}
