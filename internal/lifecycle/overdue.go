package lifecycle

import (
	"time"

	"rentoverse-web/internal/data/entity"
)

// IsOverdue reports whether a payment has slipped past its current window:
// a PENDING payment past its payment deadline, or a CONFIRMED payment past
// its viewing deadline. Any other status, or a missing deadline, is never
// overdue. This gates the OVERDUE marker only; the backend owns the actual
// EXPIRED_* transitions.
func IsOverdue(p *entity.Payment, now time.Time) bool {
	if p == nil {
		return false
	}
	switch p.PaymentStatus() {
	case entity.PaymentStatusPending:
		return !p.PaymentDeadline.IsZero() && now.After(p.PaymentDeadline.Time)
	case entity.PaymentStatusConfirmed:
		return !p.ViewingDeadline.IsZero() && now.After(p.ViewingDeadline.Time)
	}
	return false
}

// WindowText describes the active deadline for a payment row, or "-" when
// none applies.
func WindowText(p *entity.Payment) string {
	if p == nil {
		return "-"
	}
	switch p.PaymentStatus() {
	case entity.PaymentStatusPending:
		if !p.PaymentDeadline.IsZero() {
			return "Pay by " + p.PaymentDeadline.Format("Jan 2, 2006 15:04")
		}
	case entity.PaymentStatusConfirmed:
		if !p.ViewingDeadline.IsZero() {
			return "Visit by " + p.ViewingDeadline.Format("Jan 2, 2006 15:04")
		}
	}
	return "-"
}
