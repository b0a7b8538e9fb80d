package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func stubBackend(t *testing.T, mux *http.ServeMux) *backend.Backend {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, srv.Client(), zap.NewNop())
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestDashboardFiltersRoomsByMaxRent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rooms/available", jsonHandler(
		`[{"id":1,"title":"Cheap","rent":5000},{"id":2,"title":"Pricey","rent":20000}]`))
	mux.HandleFunc("/api/bookings/all_by_renter", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/awaiting", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/visit", jsonHandler(`[]`))
	mux.HandleFunc("/api/updates/renter", jsonHandler(`[]`))

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	dash, err := svc.Dashboard(context.Background(), session.Session{Email: "ana@example.com"},
		request.SearchForm{MaxRent: 10000})

	assert.NoError(t, err)
	assert.Len(t, dash.Rooms, 1)
	assert.Equal(t, "Cheap", dash.Rooms[0].Room.Title)
}

func TestDashboardUsesFilterEndpointForSearch(t *testing.T) {
	mux := http.NewServeMux()
	var filtered bool
	mux.HandleFunc("/api/rooms/filter", func(w http.ResponseWriter, r *http.Request) {
		filtered = true
		assert.Equal(t, "Dhaka", r.URL.Query().Get("location"))
		assert.Equal(t, "SINGLE", r.URL.Query().Get("type"))
		jsonHandler(`[]`)(w, r)
	})
	mux.HandleFunc("/api/bookings/all_by_renter", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/awaiting", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/visit", jsonHandler(`[]`))
	mux.HandleFunc("/api/updates/renter", jsonHandler(`[]`))

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	_, err := svc.Dashboard(context.Background(), session.Session{Email: "ana@example.com"},
		request.SearchForm{Location: "Dhaka", Type: "SINGLE"})

	assert.NoError(t, err)
	assert.True(t, filtered)
}

func TestDashboardAwaitingShowsPendingChip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rooms/available", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/all_by_renter", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/awaiting", jsonHandler(
		`[{"id":7,"status":"AWAITING_PAYMENT","paymentDeadline":1767225600000,"room":{"id":5,"title":"Sunny","rent":8000}},
		  {"id":8,"status":"AWAITING_PAYMENT","room":{"id":6,"title":"Shady","rent":8000}}]`))
	mux.HandleFunc("/api/bookings/visit", jsonHandler(`[]`))
	mux.HandleFunc("/api/updates/renter", jsonHandler(`[]`))
	mux.HandleFunc("/api/payments", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("bookingId") == "7" {
			jsonHandler(`[{"id":1,"bookingId":7,"status":"PENDING","reference":"TXN:x|ROOM:RENTO:105|BK:7"}]`)(w, r)
			return
		}
		jsonHandler(`[]`)(w, r)
	})

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	dash, err := svc.Dashboard(context.Background(), session.Session{Email: "ana@example.com"}, request.SearchForm{})

	assert.NoError(t, err)
	assert.Len(t, dash.Awaiting, 2)

	// booking 7 sits behind a submitted payment: chip, no countdown needed
	assert.NotNil(t, dash.Awaiting[0].Pending)
	assert.Equal(t, "pay-deadline-7", dash.Awaiting[0].CountdownID)
	assert.Equal(t, 2000, dash.Awaiting[0].Deposit)

	// booking 8 has no payment and no deadline
	assert.Nil(t, dash.Awaiting[1].Pending)
	assert.Empty(t, dash.Awaiting[1].CountdownID)
}

func TestDashboardVisitGating(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rooms/available", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/all_by_renter", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/awaiting", jsonHandler(`[]`))
	mux.HandleFunc("/api/bookings/visit", jsonHandler(
		`[{"id":1,"status":"PAID_CONFIRMED","room":{"id":5,"title":"A","rent":1000}},
		  {"id":2,"status":"PAID_CONFIRMED","decisionStatus":"REFUND_REQUESTED","room":{"id":6,"title":"B","rent":1000}}]`))
	mux.HandleFunc("/api/updates/renter", jsonHandler(`[]`))

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	dash, err := svc.Dashboard(context.Background(), session.Session{Email: "ana@example.com"}, request.SearchForm{})

	assert.NoError(t, err)
	assert.Len(t, dash.Visit, 2)
	assert.Equal(t, lifecycle.ActionsDecide, dash.Visit[0].Actions)
	assert.Equal(t, lifecycle.ActionsChip, dash.Visit[1].Actions)
	assert.Equal(t, "Refund requested", dash.Visit[1].ChipLabel)
}

func TestDashboardSecondarySectionsDegrade(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rooms/available", jsonHandler(`[{"id":1,"title":"Room","rent":5000}]`))
	// every booking endpoint fails; the page must still come back
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	dash, err := svc.Dashboard(context.Background(), session.Session{Email: "ana@example.com"}, request.SearchForm{})

	assert.NoError(t, err)
	assert.Len(t, dash.Rooms, 1)
	assert.Empty(t, dash.Pending)
	assert.Empty(t, dash.Awaiting)
	assert.Empty(t, dash.Visit)
	assert.Empty(t, dash.Updates)
}

func TestSubmitDecisionDropsNoteOnComplete(t *testing.T) {
	mux := http.NewServeMux()
	var gotAction, gotNote string
	mux.HandleFunc("/api/bookings/9/decision", func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotNote = r.URL.Query().Get("note")
	})

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	err := svc.SubmitDecision(context.Background(), &request.DecisionForm{
		BookingID: 9,
		Action:    "COMPLETE",
		Note:      "should not travel",
	})

	assert.NoError(t, err)
	assert.Equal(t, "COMPLETE", gotAction)
	assert.Empty(t, gotNote)
}

func TestSubmitDecisionRejectionSurfacesBackendWords(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings/9/decision", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, "Decision already recorded")
	})

	svc := NewRenterService(stubBackend(t, mux), zap.NewNop())
	err := svc.SubmitDecision(context.Background(), &request.DecisionForm{BookingID: 9, Action: "REFUND"})

	assert.Error(t, err)
	assert.Equal(t, "Decision already recorded", backend.UserMessage(err))
}
