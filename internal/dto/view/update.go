package view

import (
	"time"

	"rentoverse-web/internal/data/entity"
)

// NewUpdateItem maps an update to its feed presentation.
func NewUpdateItem(u *entity.Update, now time.Time) UpdateItem {
	item := UpdateItem{
		Message:   u.Message,
		RoomTitle: u.RoomTitle,
		RoomCode:  u.RoomCode,
		When:      TimeAgo(u.CreatedAt.Time, now),
	}
	switch u.UpdateType() {
	case entity.UpdateCompleteDone:
		item.Icon, item.Tone, item.Title = "flag", "success", "Rental completed"
	case entity.UpdateRefundDone:
		item.Icon, item.Tone, item.Title = "arrow-counterclockwise", "info", "Refund issued"
	case entity.UpdateRefundPending:
		item.Icon, item.Tone, item.Title = "hourglass-split", "warning", "Refund in review"
	default:
		item.Icon, item.Tone, item.Title = "info-circle", "info", "Update"
	}
	return item
}
