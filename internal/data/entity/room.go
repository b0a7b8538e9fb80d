package entity

import "fmt"

type Room struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rent        float64 `json:"rent"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl"`
	PublicCode  string  `json:"publicCode"`
	Provider    *User   `json:"provider,omitempty"`
}

// Code returns the public display code, deriving the RENTO:1xx form when the
// backend did not send one.
func (r *Room) Code() string {
	if r == nil {
		return "ID#-"
	}
	if r.PublicCode != "" {
		return r.PublicCode
	}
	if r.ID != 0 {
		return fmt.Sprintf("RENTO:%d", 100+r.ID)
	}
	return "ID#-"
}
