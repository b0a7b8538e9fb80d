// Package lifecycle holds the pure display rules for the booking/payment
// lifecycle: status badges, overdue markers, action gating and list ordering.
// Nothing in here performs I/O or owns a transition; the backend does.
package lifecycle

import (
	"strings"

	"rentoverse-web/internal/data/entity"
)

// BadgeToken is a display style token. Templates map tokens to CSS classes.
type BadgeToken string

const (
	BadgeWarning     BadgeToken = "warning"
	BadgeInfo        BadgeToken = "info"
	BadgeSuccess     BadgeToken = "success"
	BadgeSuccessDark BadgeToken = "success-dark"
	BadgeDanger      BadgeToken = "danger"
	BadgeNeutral     BadgeToken = "neutral"
	BadgeDefault     BadgeToken = "default"
)

// BadgeClass maps any booking or payment status string to its badge token.
// Case-insensitive and total: unknown or empty statuses get BadgeDefault.
func BadgeClass(status string) BadgeToken {
	switch entity.BookingStatus(strings.ToUpper(strings.TrimSpace(status))) {
	case "PENDING", entity.BookingStatusPendingRequest:
		return BadgeWarning
	case entity.BookingStatusAwaitingPayment:
		return BadgeInfo
	case entity.BookingStatusPaidConfirmed, entity.BookingStatusConfirmed:
		return BadgeSuccess
	case entity.BookingStatusCompleted:
		return BadgeSuccessDark
	case entity.BookingStatusDeclined, "FAILED":
		return BadgeDanger
	case "REFUNDED",
		entity.BookingStatusExpiredUnpaid,
		entity.BookingStatusExpiredNoVisit,
		entity.BookingStatusCancelledAfterViewing:
		return BadgeNeutral
	default:
		return BadgeDefault
	}
}

// PayoutBadge maps a payout status to its chip token.
func PayoutBadge(status string) BadgeToken {
	switch entity.NormalizePayoutStatus(status) {
	case entity.PayoutStatusRequested:
		return BadgeInfo
	case entity.PayoutStatusPaid:
		return BadgeSuccess
	case entity.PayoutStatusRejected:
		return BadgeDanger
	default:
		return BadgeDefault
	}
}
