package lifecycle

import (
	"testing"
	"time"

	"rentoverse-web/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestIsOverduePending(t *testing.T) {
	p := &entity.Payment{
		Status:          "PENDING",
		PaymentDeadline: entity.NewFlexTime(now.Add(-time.Minute)),
	}
	assert.True(t, IsOverdue(p, now))

	p.PaymentDeadline = entity.NewFlexTime(now.Add(time.Minute))
	assert.False(t, IsOverdue(p, now))
}

func TestIsOverdueConfirmedUsesViewingDeadline(t *testing.T) {
	p := &entity.Payment{
		Status:          "CONFIRMED",
		PaymentDeadline: entity.NewFlexTime(now.Add(-time.Hour)),
		ViewingDeadline: entity.NewFlexTime(now.Add(time.Hour)),
	}
	// the payment deadline no longer matters once confirmed
	assert.False(t, IsOverdue(p, now))

	p.ViewingDeadline = entity.NewFlexTime(now.Add(-time.Second))
	assert.True(t, IsOverdue(p, now))
}

func TestIsOverdueSettledStatusesNever(t *testing.T) {
	for _, status := range []string{"REFUNDED", "FAILED"} {
		p := &entity.Payment{
			Status:          status,
			PaymentDeadline: entity.NewFlexTime(now.Add(-time.Hour)),
			ViewingDeadline: entity.NewFlexTime(now.Add(-time.Hour)),
		}
		assert.False(t, IsOverdue(p, now), status)
	}
}

func TestIsOverdueMissingDeadline(t *testing.T) {
	assert.False(t, IsOverdue(&entity.Payment{Status: "PENDING"}, now))
	assert.False(t, IsOverdue(&entity.Payment{Status: "CONFIRMED"}, now))
	assert.False(t, IsOverdue(nil, now))
}

func TestWindowText(t *testing.T) {
	deadline := entity.NewFlexTime(time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))

	p := &entity.Payment{Status: "PENDING", PaymentDeadline: deadline}
	assert.Equal(t, "Pay by Mar 2, 2026 18:00", WindowText(p))

	p = &entity.Payment{Status: "CONFIRMED", ViewingDeadline: deadline}
	assert.Equal(t, "Visit by Mar 2, 2026 18:00", WindowText(p))

	assert.Equal(t, "-", WindowText(&entity.Payment{Status: "REFUNDED"}))
	assert.Equal(t, "-", WindowText(nil))
}
