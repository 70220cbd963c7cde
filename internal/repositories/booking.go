package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ivmatveev/car-rental-api/internal/logger"
	"github.com/ivmatveev/car-rental-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const bookingColumns = `booking_id, user_id, car_name, rent_per_day, days, status, created_at, updated_at`

// BookingWriteRepository handles booking write operations. When a
// transaction is present in the context it is used instead of the pool.
type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new booking and returns its generated id.
func (r *BookingWriteRepository) Save(ctx context.Context, userID int64, carName string, rentPerDay, days int) (int64, error) {
	const query = `
		INSERT INTO bookings (user_id, car_name, rent_per_day, days, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING booking_id
	`
	args := []any{userID, carName, rentPerDay, days, models.StatusBooked}

	var bookingID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &bookingID, query, args...)

	logger.Log.Infow("booking insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", bookingID,
		"error", err,
	)

	return bookingID, err
}

// UpdateStatus sets only the booking status and returns the updated row,
// or nil if the booking no longer exists.
func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) (*models.BookingDB, error) {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE booking_id = $1
		RETURNING ` + bookingColumns

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &booking, query, bookingID, status)

	logger.Log.Infow("booking status update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookingID, status},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// UpdateDetails replaces car name, rent and days together and returns the
// updated row, or nil if the booking no longer exists.
func (r *BookingWriteRepository) UpdateDetails(ctx context.Context, bookingID int64, carName string, rentPerDay, days int) (*models.BookingDB, error) {
	const query = `
		UPDATE bookings
		SET car_name = $2, rent_per_day = $3, days = $4, updated_at = NOW()
		WHERE booking_id = $1
		RETURNING ` + bookingColumns

	args := []any{bookingID, carName, rentPerDay, days}

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &booking, query, args...)

	logger.Log.Infow("booking details update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// BookingReadRepository handles booking read operations.
type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// GetByID returns the booking with the given id, or nil if absent.
func (r *BookingReadRepository) GetByID(ctx context.Context, bookingID int64) (*models.BookingDB, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_id = $1
	`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, bookingID)

	logger.Log.Infow("booking query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookingID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// ListByUserID returns all bookings owned by the given user.
func (r *BookingReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.BookingDB, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_id
	`

	var bookings []models.BookingDB
	err := r.db.SelectContext(ctx, &bookings, query, userID)

	logger.Log.Infow("booking list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}

// ListByUserIDAndStatuses returns the user's bookings whose status is in
// the given set.
func (r *BookingReadRepository) ListByUserIDAndStatuses(ctx context.Context, userID int64, statuses []string) ([]models.BookingDB, error) {
	query, args, err := sqlx.In(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = ? AND status IN (?)
		ORDER BY booking_id
	`, userID, statuses)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var bookings []models.BookingDB
	err = r.db.SelectContext(ctx, &bookings, query, args...)

	logger.Log.Infow("booking status list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}
