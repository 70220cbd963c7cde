package models

// Booking event operations.
const (
	OperationBookingCreated = "booking_created"
	OperationBookingUpdated = "booking_updated"
)

// BookingEvent is published to Kafka after every successful booking write.
type BookingEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Timestamp int64  `json:"timestamp"`  // Unix seconds
	BookingID int64  `json:"booking_id"`
	UserID    int64  `json:"user_id"`
	Operation string `json:"operation"`
}
