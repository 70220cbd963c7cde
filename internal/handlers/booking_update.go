package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ivmatveev/car-rental-api/internal/logger"
	"github.com/ivmatveev/car-rental-api/internal/middlewares"
	"github.com/ivmatveev/car-rental-api/internal/models"
)

// BookingUpdater defines the interface that the service must implement.
type BookingUpdater interface {
	UpdateStatus(ctx context.Context, userID, bookingID int64, status string) (*models.BookingWithTotal, error)
	UpdateDetails(ctx context.Context, userID, bookingID int64, carName string, rentPerDay, days int) (*models.BookingWithTotal, error)
}

// UpdateBookingRequest represents the JSON body for updating a booking.
// Exactly one update shape is applied: when status is present only the
// status changes; otherwise carName, rentPerDay and days must all be
// present and change together.
// swagger:model UpdateBookingRequest
type UpdateBookingRequest struct {
	// New status: booked, completed or cancelled
	Status string `json:"status"`

	// Car name
	CarName string `json:"carName"`

	// Rent per day, at most 2000
	RentPerDay int `json:"rentPerDay"`

	// Rental duration in days, at most 365
	Days int `json:"days"`
}

// UpdateBookingResponse represents a successful booking update response
// swagger:model UpdateBookingResponse
type UpdateBookingResponse struct {
	Success bool                     `json:"success"`
	Booking *models.BookingWithTotal `json:"booking"`
}

// NewUpdateBookingHandler returns an HTTP handler for updating a booking.
// @Summary Update a booking
// @Description Updates either the status or the rental details of a booking owned by the authenticated user.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Param request body handlers.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} handlers.UpdateBookingResponse "Booking updated"
// @Failure 400 {object} handlers.BookingErrorResponse "Invalid id, status or fields"
// @Failure 401 {object} handlers.BookingErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.BookingErrorResponse "Booking owned by another user"
// @Failure 404 {object} handlers.BookingErrorResponse "Booking not found"
// @Router /bookings/{bookingId} [patch]
// @Security BearerAuth
func NewUpdateBookingHandler(svc BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Unauthorized"})
			return
		}

		bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingId"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "invalid bookingId"})
			return
		}

		var req UpdateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update booking request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "invalid request body"})
			return
		}

		var updated *models.BookingWithTotal

		if req.Status != "" {
			// Status wins: any other supplied fields are ignored.
			if !models.ValidStatus(req.Status) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BookingErrorResponse{Error: "invalid status"})
				return
			}
			updated, err = svc.UpdateStatus(ctx, claims.UserID, bookingID, req.Status)
		} else {
			if msg, ok := validBookingFields(req.CarName, req.RentPerDay, req.Days); !ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BookingErrorResponse{Error: msg})
				return
			}
			updated, err = svc.UpdateDetails(ctx, claims.UserID, bookingID, req.CarName, req.RentPerDay, req.Days)
		}

		if err != nil {
			writeBookingError(w, claims.UserID, bookingID, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateBookingResponse{
			Success: true,
			Booking: updated,
		})
	}
}
