package entity

import "strings"

type UpdateType string

const (
	UpdateCompleteDone  UpdateType = "COMPLETE_DONE"
	UpdateRefundDone    UpdateType = "REFUND_DONE"
	UpdateRefundPending UpdateType = "REFUND_PENDING"
	UpdateInfo          UpdateType = "INFO"
)

func NormalizeUpdateType(raw string) UpdateType {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch UpdateType(s) {
	case UpdateCompleteDone, UpdateRefundDone, UpdateRefundPending:
		return UpdateType(s)
	}
	return UpdateInfo
}

// Update is one entry in a renter's recent-updates feed.
type Update struct {
	ID        int64    `json:"id"`
	Type      string   `json:"type"`
	Message   string   `json:"message"`
	RoomTitle string   `json:"roomTitle"`
	RoomCode  string   `json:"roomCode"`
	CreatedAt FlexTime `json:"createdAt"`
}

func (u *Update) UpdateType() UpdateType {
	return NormalizeUpdateType(u.Type)
}
