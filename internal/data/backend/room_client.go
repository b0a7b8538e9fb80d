package backend

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"rentoverse-web/internal/data/entity"
)

type RoomClient struct {
	c *Client
}

func (r *RoomClient) Available(ctx context.Context) ([]*entity.Room, error) {
	var rooms []*entity.Room
	if err := r.c.getJSON(ctx, "/api/rooms/available", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Filter queries rooms by location and type. Rent filtering happens on our
// side; the backend contract has no rent parameter.
func (r *RoomClient) Filter(ctx context.Context, location, roomType string) ([]*entity.Room, error) {
	query := url.Values{}
	query.Set("location", location)
	query.Set("type", roomType)
	var rooms []*entity.Room
	if err := r.c.getJSON(ctx, "/api/rooms/filter", query, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomClient) ByProvider(ctx context.Context, email string) ([]*entity.Room, error) {
	query := url.Values{}
	query.Set("email", email)
	var rooms []*entity.Room
	if err := r.c.getJSON(ctx, "/api/rooms/provider", query, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Add proxies a multipart room posting (fields + image) through untouched.
func (r *RoomClient) Add(ctx context.Context, contentType string, body io.Reader) error {
	_, err := r.c.postMultipart(ctx, "/api/rooms/add", contentType, body)
	return err
}

func (r *RoomClient) Delete(ctx context.Context, roomID int64) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/api/rooms/%d", roomID))
	return err
}
