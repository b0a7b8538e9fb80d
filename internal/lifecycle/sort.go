package lifecycle

import (
	"sort"
	"time"

	"rentoverse-web/internal/data/entity"
)

// statusOrder groups payment rows: actionable first, settled last. Unknown
// statuses sink to the bottom.
var statusOrder = map[entity.PaymentStatus]int{
	entity.PaymentStatusPending:   0,
	entity.PaymentStatusConfirmed: 1,
	entity.PaymentStatusRefunded:  2,
	entity.PaymentStatusFailed:    3,
}

func paymentRank(p *entity.Payment) int {
	if r, ok := statusOrder[p.PaymentStatus()]; ok {
		return r
	}
	return 99
}

// Stamp picks the most recent meaningful timestamp of a payment for
// newest-first ordering. Missing stamps sort as the zero time.
func Stamp(p *entity.Payment) time.Time {
	for _, t := range []entity.FlexTime{p.UpdatedAt, p.ConfirmedAt, p.CreatedAt} {
		if !t.IsZero() {
			return t.Time
		}
	}
	return time.Time{}
}

// SortPayments orders payments by status priority, then newest first within
// the same status. Stable so equal rows keep their fetch order.
func SortPayments(items []*entity.Payment) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := paymentRank(items[i]), paymentRank(items[j])
		if ri != rj {
			return ri < rj
		}
		return Stamp(items[i]).After(Stamp(items[j]))
	})
}

// SortBookingsNewest orders bookings newest first by creation time.
func SortBookingsNewest(items []*entity.Booking) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Time.After(items[j].CreatedAt.Time)
	})
}
