package models

import "time"

// ChatMessage is a single assistant exchange. Response is nil until the
// interpretation call completes, then set exactly once.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	HotelID   string    `json:"hotelId,omitempty"`
	Message   string    `json:"message"`
	Response  *string   `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
