package usecase

import (
	"strconv"
	"strings"

	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/dto/view"
)

// statusLabel turns a status constant into the text printed on its badge.
func statusLabel(status entity.BookingStatus) string {
	return strings.ReplaceAll(string(status), "_", " ")
}

func formatDate(t entity.FlexTime) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

func formatDateTime(t entity.FlexTime) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006 15:04")
}

func formatRent(rent float64) string {
	if rent <= 0 {
		return ""
	}
	return strconv.FormatFloat(rent, 'f', -1, 64)
}

func roomCards(rooms []*entity.Room) []view.RoomCard {
	cards := make([]view.RoomCard, 0, len(rooms))
	for _, r := range rooms {
		cards = append(cards, view.NewRoomCard(r))
	}
	return cards
}
