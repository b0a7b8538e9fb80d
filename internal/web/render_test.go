package web

import (
	"net/http/httptest"
	"testing"

	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)

	for _, page := range []string{
		"login", "admin_login", "register", "verify",
		"renter_dashboard", "pay",
		"provider_dashboard", "room_new",
		"admin_dashboard", "admin_payments",
		"support",
	} {
		_, ok := r.pages[page]
		assert.True(t, ok, "missing page %s", page)
	}
}

func TestRenderLoginPage(t *testing.T) {
	r, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "login", &view.AuthPage{
		Page:  view.Page{Title: "Login", Success: "Account verified. Please log in."},
		Email: "rina@example.com",
	})

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "rina@example.com")
	assert.Contains(t, body, "Account verified. Please log in.")
}

func TestRenderRenterDashboard(t *testing.T) {
	r, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)

	booking := &entity.Booking{
		ID:     7,
		Status: "AWAITING_PAYMENT",
		Room:   &entity.Room{ID: 5, Title: "Lakeview Studio", Rent: 8000},
	}
	dash := &view.RenterDashboard{
		Page:   view.Page{Title: "Dashboard", UserName: "Rina", UserRole: "RENTER", LoggedIn: true},
		Search: view.SearchEcho{Location: "Dhanmondi", Type: "SINGLE", MaxRent: "9000"},
		Rooms:  []view.RoomCard{view.NewRoomCard(booking.Room)},
		Awaiting: []view.AwaitingCard{{
			Booking:     booking,
			Code:        booking.Room.Code(),
			Deposit:     2000,
			CountdownID: "pay-deadline-7",
			DeadlineMs:  1767225600000,
			PayURL:      "/pay?bookingId=7",
		}},
		Visit: []view.VisitCard{{
			Booking:   booking,
			Code:      booking.Room.Code(),
			Actions:   lifecycle.ActionsChip,
			ChipLabel: "Refund requested",
			ChipToken: lifecycle.BadgeClass("PAID_CONFIRMED"),
		}},
		Updates: []view.UpdateItem{{
			Icon: "flag", Tone: "success", Title: "Rental completed",
			Message: "Deposit released.", When: "2h ago",
		}},
	}

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "renter_dashboard", dash)

	assert.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Lakeview Studio")
	assert.Contains(t, body, "RENTO:105")
	assert.Contains(t, body, `data-countdown-id="pay-deadline-7"`)
	assert.Contains(t, body, "Refund requested")
	assert.Contains(t, body, "Rental completed")
	assert.Contains(t, body, `value="Dhanmondi"`)
}

func TestRenderUnknownPageIs500(t *testing.T) {
	r, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "no_such_page", nil)
	assert.Equal(t, 500, rec.Code)
}
