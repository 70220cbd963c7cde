package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ivmatveev/car-rental-api/internal/logger"
	"github.com/ivmatveev/car-rental-api/internal/middlewares"
	"github.com/ivmatveev/car-rental-api/internal/models"
	"github.com/ivmatveev/car-rental-api/internal/services"
)

// BookingGetter defines the interface that the service must implement.
type BookingGetter interface {
	GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingWithTotal, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BookingWithTotal, error)
	Summary(ctx context.Context, userID int64, username string) (*models.BookingSummary, error)
}

// GetBookingsResponse represents a successful bookings read response
// swagger:model GetBookingsResponse
type GetBookingsResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// NewGetBookingsHandler returns an HTTP handler for reading bookings.
// Three mutually exclusive modes: summary=true for the aggregate view,
// bookingId=N for a single owned booking, neither for the caller's full
// list.
// @Summary Read bookings
// @Description Returns a summary, a single booking, or all bookings of the authenticated user depending on query parameters.
// @Tags bookings
// @Produce json
// @Param summary query bool false "Return aggregate summary"
// @Param bookingId query int false "Return a single booking"
// @Success 200 {object} handlers.GetBookingsResponse "Bookings returned"
// @Failure 400 {object} handlers.BookingErrorResponse "Non-numeric bookingId"
// @Failure 401 {object} handlers.BookingErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.BookingErrorResponse "Booking owned by another user"
// @Failure 404 {object} handlers.BookingErrorResponse "Booking not found"
// @Router /bookings [get]
// @Security BearerAuth
func NewGetBookingsHandler(svc BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Unauthorized"})
			return
		}

		query := r.URL.Query()

		if query.Get("summary") == "true" {
			summary, err := svc.Summary(ctx, claims.UserID, claims.Username)
			if err != nil {
				logger.Log.Errorw("failed to get booking summary", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Internal server error"})
				return
			}

			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(GetBookingsResponse{Success: true, Data: summary})
			return
		}

		if bookingIDStr := query.Get("bookingId"); bookingIDStr != "" {
			bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BookingErrorResponse{Error: "invalid bookingId"})
				return
			}

			booking, err := svc.GetByID(ctx, claims.UserID, bookingID)
			if err != nil {
				writeBookingError(w, claims.UserID, bookingID, err)
				return
			}

			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(GetBookingsResponse{Success: true, Data: booking})
			return
		}

		bookings, err := svc.ListByUser(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list bookings", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetBookingsResponse{Success: true, Data: bookings})
	}
}

// writeBookingError maps service errors for a single booking to HTTP.
// Ownership violations are a 403, never disguised as a 404.
func writeBookingError(w http.ResponseWriter, userID, bookingID int64, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(BookingErrorResponse{Error: "booking not found"})
	case errors.Is(err, services.ErrNotBookingOwner):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(BookingErrorResponse{Error: "booking does not belong to user"})
	default:
		logger.Log.Errorw("booking request failed", "userID", userID, "bookingID", bookingID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(BookingErrorResponse{Error: "Internal server error"})
	}
}
