package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlexTimeUnmarshalISO(t *testing.T) {
	var f FlexTime
	err := json.Unmarshal([]byte(`"2026-03-01T10:30:00Z"`), &f)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), f.Time.UTC())
}

func TestFlexTimeUnmarshalEpochMillis(t *testing.T) {
	var f FlexTime
	err := json.Unmarshal([]byte(`1767225600000`), &f)
	assert.NoError(t, err)
	assert.Equal(t, int64(1767225600000), f.UnixMilli())
}

func TestFlexTimeUnmarshalSecondsObject(t *testing.T) {
	var f FlexTime
	err := json.Unmarshal([]byte(`{"seconds":1767225600,"nanoseconds":500000000}`), &f)
	assert.NoError(t, err)
	assert.Equal(t, int64(1767225600), f.Unix())
	assert.Equal(t, 500000000, f.Nanosecond())
}

func TestFlexTimeUnmarshalNull(t *testing.T) {
	var f FlexTime
	err := json.Unmarshal([]byte(`null`), &f)
	assert.NoError(t, err)
	assert.True(t, f.IsZero())
}

func TestFlexTimeInsideStruct(t *testing.T) {
	var b Booking
	payload := `{"id":7,"status":"AWAITING_PAYMENT","paymentDeadline":1767225600000,"createdAt":"2026-01-01T00:00:00Z"}`
	err := json.Unmarshal([]byte(payload), &b)
	assert.NoError(t, err)
	assert.Equal(t, int64(1767225600000), b.PaymentDeadline.UnixMilli())
	assert.False(t, b.CreatedAt.IsZero())
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := map[string]bool{
		"2026-03-01T10:30:00Z":       true,
		"2026-03-01T10:30:00.123456": true,
		"2026-03-01T10:30:00":        true,
		"2026-03-01 10:30:00":        true,
		"2026-03-01":                 true,
		"1767225600000":              true,
		"not a date":                 false,
		"":                           false,
	}
	for raw, ok := range cases {
		got := ParseTimestamp(raw)
		assert.Equal(t, ok, !got.IsZero(), "input %q", raw)
	}
}
