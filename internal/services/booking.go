package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ivmatveev/car-rental-api/internal/logger"
	"github.com/ivmatveev/car-rental-api/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrBookingNotFound is returned when the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotBookingOwner is returned when the booking belongs to another user.
	ErrNotBookingOwner = errors.New("booking does not belong to user")
)

// BookingWriter defines write operations for bookings.
type BookingWriter interface {
	Save(ctx context.Context, userID int64, carName string, rentPerDay, days int) (int64, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) (*models.BookingDB, error)
	UpdateDetails(ctx context.Context, bookingID int64, carName string, rentPerDay, days int) (*models.BookingDB, error)
}

// BookingReader defines read operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, bookingID int64) (*models.BookingDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.BookingDB, error)
	ListByUserIDAndStatuses(ctx context.Context, userID int64, statuses []string) ([]models.BookingDB, error)
}

// SummaryCache caches per-user booking summaries.
type SummaryCache interface {
	Get(ctx context.Context, userID int64) (*models.BookingSummary, error)
	Set(ctx context.Context, summary *models.BookingSummary) error
	Invalidate(ctx context.Context, userID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BookingService handles booking operations, ownership checks, summary
// caching and Kafka event publishing.
type BookingService struct {
	writeRepo   BookingWriter
	readRepo    BookingReader
	cacheRepo   SummaryCache
	kafkaWriter KafkaWriter
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	writeRepo BookingWriter,
	readRepo BookingReader,
	cacheRepo SummaryCache,
	kafkaWriter KafkaWriter,
) *BookingService {
	return &BookingService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a booking event to Kafka. Failures are logged,
// never surfaced: eventing must not fail the request.
func (s *BookingService) publishEvent(ctx context.Context, event models.BookingEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal booking event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish booking event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Booking event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

func (s *BookingService) afterWrite(ctx context.Context, bookingID, userID int64, operation string) {
	if err := s.cacheRepo.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate summary cache", "userID", userID, "error", err)
	}

	s.publishEvent(ctx, models.BookingEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		BookingID: bookingID,
		UserID:    userID,
		Operation: operation,
	})
}

// Create persists a new booking owned by the caller with initial status
// "booked" and returns its id and computed total cost.
func (s *BookingService) Create(ctx context.Context, userID int64, carName string, rentPerDay, days int) (int64, int, error) {
	bookingID, err := s.writeRepo.Save(ctx, userID, carName, rentPerDay, days)
	if err != nil {
		logger.Log.Errorw("failed to save booking", "userID", userID, "carName", carName, "error", err)
		return 0, 0, err
	}

	s.afterWrite(ctx, bookingID, userID, models.OperationBookingCreated)

	return bookingID, rentPerDay * days, nil
}

// GetByID returns one booking with its computed total. The booking must
// belong to the caller; a foreign booking is an ownership failure, not a
// not-found.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingWithTotal, error) {
	booking, err := s.resolveOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	withTotal := booking.WithTotal()
	return &withTotal, nil
}

// ListByUser returns all of the caller's bookings, each with its
// recomputed total.
func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]models.BookingWithTotal, error) {
	bookings, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookings", "userID", userID, "error", err)
		return nil, err
	}

	result := make([]models.BookingWithTotal, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.WithTotal())
	}
	return result, nil
}

// Summary aggregates the caller's booked and completed bookings. The
// result is cached; booking writes invalidate the cache entry.
func (s *BookingService) Summary(ctx context.Context, userID int64, username string) (*models.BookingSummary, error) {
	cached, err := s.cacheRepo.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read summary cache", "userID", userID, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	bookings, err := s.readRepo.ListByUserIDAndStatuses(ctx, userID, []string{models.StatusBooked, models.StatusCompleted})
	if err != nil {
		logger.Log.Errorw("failed to list bookings for summary", "userID", userID, "error", err)
		return nil, err
	}

	summary := &models.BookingSummary{
		UserID:   userID,
		Username: username,
	}
	for _, b := range bookings {
		summary.TotalBookings++
		summary.TotalAmountSpent += b.TotalCost()
	}

	if err := s.cacheRepo.Set(ctx, summary); err != nil {
		logger.Log.Errorw("failed to cache summary", "userID", userID, "error", err)
	}

	return summary, nil
}

// resolveOwned fetches the booking and enforces the ownership invariant.
func (s *BookingService) resolveOwned(ctx context.Context, userID, bookingID int64) (*models.BookingDB, error) {
	booking, err := s.readRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.Log.Errorw("failed to get booking", "bookingID", bookingID, "error", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		logger.Log.Warnw("booking ownership mismatch", "bookingID", bookingID, "owner", booking.UserID, "caller", userID)
		return nil, ErrNotBookingOwner
	}
	return booking, nil
}

// UpdateStatus sets only the booking status and returns the updated
// record with its recomputed total.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID int64, status string) (*models.BookingWithTotal, error) {
	if _, err := s.resolveOwned(ctx, userID, bookingID); err != nil {
		return nil, err
	}

	updated, err := s.writeRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		logger.Log.Errorw("failed to update booking status", "bookingID", bookingID, "status", status, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	s.afterWrite(ctx, bookingID, userID, models.OperationBookingUpdated)

	withTotal := updated.WithTotal()
	return &withTotal, nil
}

// UpdateDetails replaces car name, rent and days together and returns the
// updated record with its recomputed total.
func (s *BookingService) UpdateDetails(ctx context.Context, userID, bookingID int64, carName string, rentPerDay, days int) (*models.BookingWithTotal, error) {
	if _, err := s.resolveOwned(ctx, userID, bookingID); err != nil {
		return nil, err
	}

	updated, err := s.writeRepo.UpdateDetails(ctx, bookingID, carName, rentPerDay, days)
	if err != nil {
		logger.Log.Errorw("failed to update booking details", "bookingID", bookingID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	s.afterWrite(ctx, bookingID, userID, models.OperationBookingUpdated)

	withTotal := updated.WithTotal()
	return &withTotal, nil
}
