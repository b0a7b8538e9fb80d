package backend

import (
	"context"
	"fmt"

	"rentoverse-web/internal/data/entity"
)

// AdminClient covers the admin-only listing and delete endpoints.
type AdminClient struct {
	c *Client
}

func (a *AdminClient) Users(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := a.c.getJSON(ctx, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AdminClient) Rooms(ctx context.Context) ([]*entity.Room, error) {
	var rooms []*entity.Room
	if err := a.c.getJSON(ctx, "/api/admin/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (a *AdminClient) Bookings(ctx context.Context) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := a.c.getJSON(ctx, "/api/admin/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *AdminClient) DeleteUser(ctx context.Context, userID int64) error {
	_, err := a.c.delete(ctx, fmt.Sprintf("/api/admin/users/%d", userID))
	return err
}

func (a *AdminClient) DeleteRoom(ctx context.Context, roomID int64) error {
	_, err := a.c.delete(ctx, fmt.Sprintf("/api/admin/rooms/%d", roomID))
	return err
}

func (a *AdminClient) DeleteBooking(ctx context.Context, bookingID int64) error {
	_, err := a.c.delete(ctx, fmt.Sprintf("/api/admin/bookings/%d", bookingID))
	return err
}
