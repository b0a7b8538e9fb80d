package lifecycle

import (
	"testing"
	"time"

	"rentoverse-web/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func pay(id int64, status string, created time.Time) *entity.Payment {
	return &entity.Payment{ID: id, Status: status, CreatedAt: entity.NewFlexTime(created)}
}

func TestSortPaymentsGroupsByStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []*entity.Payment{
		pay(1, "FAILED", base),
		pay(2, "CONFIRMED", base),
		pay(3, "PENDING", base),
		pay(4, "REFUNDED", base),
	}
	SortPayments(items)

	got := []int64{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	assert.Equal(t, []int64{3, 2, 4, 1}, got)
}

func TestSortPaymentsNewestFirstWithinStatus(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []*entity.Payment{
		pay(1, "PENDING", base),
		pay(2, "PENDING", base.Add(time.Hour)),
		pay(3, "PENDING", base.Add(30*time.Minute)),
	}
	SortPayments(items)

	got := []int64{items[0].ID, items[1].ID, items[2].ID}
	assert.Equal(t, []int64{2, 3, 1}, got)
}

func TestSortPaymentsUnknownStatusSinks(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []*entity.Payment{
		pay(1, "MYSTERY", base),
		pay(2, "REFUNDED", base),
	}
	SortPayments(items)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestStampFallsThrough(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	p := &entity.Payment{
		CreatedAt:   entity.NewFlexTime(base),
		ConfirmedAt: entity.NewFlexTime(base.Add(time.Hour)),
		UpdatedAt:   entity.NewFlexTime(base.Add(2 * time.Hour)),
	}
	assert.Equal(t, base.Add(2*time.Hour), Stamp(p))

	p = &entity.Payment{
		CreatedAt:   entity.NewFlexTime(base),
		ConfirmedAt: entity.NewFlexTime(base.Add(time.Hour)),
	}
	assert.Equal(t, base.Add(time.Hour), Stamp(p))

	p = &entity.Payment{CreatedAt: entity.NewFlexTime(base)}
	assert.Equal(t, base, Stamp(p))

	assert.True(t, Stamp(&entity.Payment{}).IsZero())
}

func TestSortBookingsNewest(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []*entity.Booking{
		{ID: 1, CreatedAt: entity.NewFlexTime(base)},
		{ID: 2, CreatedAt: entity.NewFlexTime(base.Add(time.Hour))},
	}
	SortBookingsNewest(items)
	assert.Equal(t, int64(2), items[0].ID)
}
