// Package queue defines message payloads exchanged over the message broker.
package queue

// CheckoutQueueName is the durable queue carrying completed mock checkouts.
const CheckoutQueueName = "checkout.completed"

// CheckoutCompletedEvent is published when a customer completes the mock
// payment step.  Nothing is charged and no seat is reserved; the event only
// feeds logs and analytics.
type CheckoutCompletedEvent struct {
	Reference   string   `json:"reference"`
	MovieID     int64    `json:"movie_id"`
	MovieTitle  string   `json:"movie_title"`
	TheaterID   string   `json:"theater_id"`
	TheaterName string   `json:"theater_name"`
	Date        string   `json:"date"`
	Showtime    string   `json:"showtime"`
	SeatIDs     []string `json:"seat_ids"`
	SeatLabels  []string `json:"seats"`
	Total       float64  `json:"total"`
	CompletedAt string   `json:"completed_at"`
}
