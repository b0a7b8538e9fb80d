package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexTime decodes the three timestamp shapes the backend emits: an ISO
// string, epoch milliseconds, or a {seconds,nanoseconds} object. The zero
// value means the field was absent or unparseable.
type FlexTime struct {
	time.Time
}

func NewFlexTime(t time.Time) FlexTime { return FlexTime{Time: t} }

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		f.Time = time.Time{}
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.Time = ParseTimestamp(s)
		return nil
	}
	if raw[0] == '{' {
		var obj struct {
			Seconds     int64 `json:"seconds"`
			Nanoseconds int64 `json:"nanoseconds"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Seconds == 0 && obj.Nanoseconds == 0 {
			f.Time = time.Time{}
			return nil
		}
		f.Time = time.Unix(obj.Seconds, obj.Nanoseconds)
		return nil
	}
	millis, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	f.Time = time.UnixMilli(int64(millis))
	return nil
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Format(time.RFC3339))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp string, returning the zero time
// when no known layout matches.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(millis)
	}
	return time.Time{}
}
