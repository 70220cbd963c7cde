package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ivmatveev/car-rental-api/internal/logger"
	"github.com/ivmatveev/car-rental-api/internal/middlewares"
)

// Rental limits enforced on create and full update.
const (
	maxRentPerDay = 2000
	maxDays       = 365
)

// BookingCreator defines the interface that the service must implement.
type BookingCreator interface {
	Create(ctx context.Context, userID int64, carName string, rentPerDay, days int) (int64, int, error)
}

// CreateBookingRequest represents the JSON body for creating a booking
// swagger:model CreateBookingRequest
type CreateBookingRequest struct {
	// Car name
	// required: true
	// default: Swift
	CarName string `json:"carName"`

	// Rent per day, at most 2000
	// required: true
	// default: 1000
	RentPerDay int `json:"rentPerDay"`

	// Rental duration in days, at most 365
	// required: true
	// default: 3
	Days int `json:"days"`
}

// CreateBookingData carries the created booking id and its computed total.
type CreateBookingData struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
	TotalCost int    `json:"totalCost"`
}

// CreateBookingResponse represents a successful booking creation response
// swagger:model CreateBookingResponse
type CreateBookingResponse struct {
	Success bool              `json:"success"`
	Data    CreateBookingData `json:"data"`
}

// BookingErrorResponse represents an error response for booking routes
// swagger:model BookingErrorResponse
type BookingErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// validBookingFields checks the create/full-update field constraints.
// Returns a client-facing message when validation fails.
func validBookingFields(carName string, rentPerDay, days int) (string, bool) {
	if carName == "" || rentPerDay == 0 || days == 0 {
		return "incomplete details", false
	}
	if rentPerDay < 0 || days < 0 || rentPerDay > maxRentPerDay || days > maxDays {
		return "invalid details", false
	}
	return "", true
}

// NewCreateBookingHandler returns an HTTP handler for creating a booking.
// @Summary Create a booking
// @Description Creates a booking owned by the authenticated user with initial status "booked".
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body handlers.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} handlers.CreateBookingResponse "Booking created"
// @Failure 400 {object} handlers.BookingErrorResponse "Missing or out-of-range fields"
// @Failure 401 {object} handlers.BookingErrorResponse "Unauthorized"
// @Router /bookings [post]
// @Security BearerAuth
func NewCreateBookingHandler(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create booking request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "invalid request body"})
			return
		}

		if msg, ok := validBookingFields(req.CarName, req.RentPerDay, req.Days); !ok {
			logger.Log.Warnw("invalid booking fields", "carName", req.CarName, "rentPerDay", req.RentPerDay, "days", req.Days)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: msg})
			return
		}

		bookingID, totalCost, err := svc.Create(ctx, claims.UserID, req.CarName, req.RentPerDay, req.Days)
		if err != nil {
			logger.Log.Errorw("failed to create booking", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBookingResponse{
			Success: true,
			Data: CreateBookingData{
				Message:   "Booking created successfully",
				BookingID: bookingID,
				TotalCost: totalCost,
			},
		})
	}
}
