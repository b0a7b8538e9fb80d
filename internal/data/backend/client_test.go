package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
)

func testBackend(t *testing.T, handler http.HandlerFunc) *Backend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), zap.NewNop())
}

func TestRejectionCarriesVerbatimBody(t *testing.T) {
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, "Deadline passed")
	})

	err := be.Booking.Decision(context.Background(), 42, "REFUND", "too noisy")
	assert.Error(t, err)

	apiErr, ok := IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Deadline passed", apiErr.Body)

	// the user sees the backend's own words
	assert.Equal(t, "Deadline passed", UserMessage(err))
}

func TestRejectionWithEmptyBody(t *testing.T) {
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := be.Payment.Confirm(context.Background(), 1)
	apiErr, ok := IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, "HTTP 403", apiErr.Error())
}

func TestTransportFailureIsGeneric(t *testing.T) {
	// port 1 refuses connections
	be := New("http://127.0.0.1:1", &http.Client{}, zap.NewNop())

	_, err := be.Room.Available(context.Background())
	assert.Error(t, err)

	_, ok := IsAPIError(err)
	assert.False(t, ok)
	assert.Equal(t, "Network error. Please try again.", UserMessage(err))
}

func TestIsAPIErrorUnwrapsChains(t *testing.T) {
	inner := &APIError{StatusCode: 400, Body: "bad"}
	wrapped := fmt.Errorf("submit decision: %w", fmt.Errorf("pay escrow: %w", inner))

	apiErr, ok := IsAPIError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, inner, apiErr)

	_, ok = IsAPIError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = IsAPIError(nil)
	assert.False(t, ok)
}

func TestGetJSONDecodes(t *testing.T) {
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/available", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":5,"title":"Sunny room","rent":8000}]`)
	})

	rooms, err := be.Room.Available(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, "Sunny room", rooms[0].Title)
	assert.Equal(t, "RENTO:105", rooms[0].Code())
}

func TestPayoutByBookingNotFoundIsNil(t *testing.T) {
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no payout", http.StatusNotFound)
	})

	payout, err := be.Payout.ByBooking(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, payout)
}

func TestPendingForBooking(t *testing.T) {
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PENDING", r.URL.Query().Get("status"))
		assert.Equal(t, "7", r.URL.Query().Get("bookingId"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":3,"bookingId":7,"status":"PENDING"}]`)
	})

	p, err := be.Payment.PendingForBooking(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, int64(3), p.ID)
}

func TestPendingForBookingEmpty(t *testing.T) {
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	p, err := be.Payment.PendingForBooking(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestVerifyCodeIsFormEncoded(t *testing.T) {
	var gotContentType, gotBody string
	be := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Encode()
	})

	err := be.Auth.VerifyCode(context.Background(), "ana@example.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Contains(t, gotBody, "code=123456")
	assert.Contains(t, gotBody, "email=ana%40example.com")
}
