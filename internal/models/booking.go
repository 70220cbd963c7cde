package models

import "time"

// Booking status values.
const (
	StatusBooked    = "booked"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BookingDB represents a booking row in the database.
type BookingDB struct {
	BookingID  int64     `json:"id" db:"booking_id"`           // Primary key
	UserID     int64     `json:"user_id" db:"user_id"`         // Owning user, immutable
	CarName    string    `json:"car_name" db:"car_name"`       // Rented car
	RentPerDay int       `json:"rent_per_day" db:"rent_per_day"`
	Days       int       `json:"days" db:"days"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// TotalCost is the derived booking price. It is never stored and is
// recomputed on every read.
func (b *BookingDB) TotalCost() int {
	return b.RentPerDay * b.Days
}

// BookingWithTotal is a booking row with its recomputed total attached.
type BookingWithTotal struct {
	BookingDB
	TotalCost int `json:"totalCost"`
}

// WithTotal wraps the booking with its computed total cost.
func (b BookingDB) WithTotal() BookingWithTotal {
	return BookingWithTotal{
		BookingDB: b,
		TotalCost: b.TotalCost(),
	}
}

// BookingSummary is the aggregate view over a user's booked and
// completed bookings.
type BookingSummary struct {
	UserID           int64  `json:"userId"`
	Username         string `json:"username"`
	TotalBookings    int    `json:"totalBookings"`
	TotalAmountSpent int    `json:"totalAmountSpent"`
}
