package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeClass(t *testing.T) {
	cases := map[string]BadgeToken{
		"PENDING":                 BadgeWarning,
		"PENDING_REQUEST":         BadgeWarning,
		"AWAITING_PAYMENT":        BadgeInfo,
		"PAID_CONFIRMED":          BadgeSuccess,
		"CONFIRMED":               BadgeSuccess,
		"COMPLETED":               BadgeSuccessDark,
		"DECLINED":                BadgeDanger,
		"FAILED":                  BadgeDanger,
		"REFUNDED":                BadgeNeutral,
		"EXPIRED_UNPAID":          BadgeNeutral,
		"EXPIRED_NO_VISIT":        BadgeNeutral,
		"CANCELLED_AFTER_VIEWING": BadgeNeutral,
	}
	for status, want := range cases {
		assert.Equal(t, want, BadgeClass(status), status)
	}
}

func TestBadgeClassIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, BadgeSuccess, BadgeClass("paid_confirmed"))
	assert.Equal(t, BadgeWarning, BadgeClass("  Pending_Request  "))
}

func TestBadgeClassUnknownFallsBack(t *testing.T) {
	assert.Equal(t, BadgeDefault, BadgeClass("SOMETHING_ELSE"))
	assert.Equal(t, BadgeDefault, BadgeClass(""))
}

func TestPayoutBadge(t *testing.T) {
	assert.Equal(t, BadgeInfo, PayoutBadge("REQUESTED"))
	assert.Equal(t, BadgeSuccess, PayoutBadge("paid"))
	assert.Equal(t, BadgeDanger, PayoutBadge("REJECTED"))
	assert.Equal(t, BadgeDefault, PayoutBadge("whatever"))
}
