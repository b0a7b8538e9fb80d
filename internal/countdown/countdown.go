// Package countdown renders live "Dd HH:MM:SS" countdowns to deadline
// timestamps. A Registry owns one ticker per output target; starting a new
// countdown for a key always stops the previous one, so re-rendered lists
// never leak tickers.
package countdown

import (
	"fmt"
	"strconv"
	"time"

	"rentoverse-web/internal/data/entity"
)

// Placeholder is shown where a countdown has not started.
const Placeholder = "--:--:--"

// Remaining clamps the time left until deadline at zero. A countdown that
// has expired keeps reporting zero; it never goes negative.
func Remaining(deadline, now time.Time) time.Duration {
	d := deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Format renders a duration as "Dd HH:MM:SS", truncated to whole seconds.
func Format(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400
	secs -= days * 86400
	h := secs / 3600
	secs -= h * 3600
	m := secs / 60
	s := secs - m*60
	return fmt.Sprintf("%dd %02d:%02d:%02d", days, h, m, s)
}

// ParseDeadline accepts the deadline forms the backend emits: an ISO-8601
// string or epoch milliseconds (as number-in-a-string). ok is false when the
// value is absent or unparseable; callers then leave the placeholder alone.
func ParseDeadline(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if ms <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(ms), true
	}
	if t := entity.ParseTimestamp(raw); !t.IsZero() {
		return t, true
	}
	return time.Time{}, false
}
