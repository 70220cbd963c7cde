package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ivmatveev/car-rental-api/internal/models"
	"github.com/ivmatveev/car-rental-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func newBookingService(t *testing.T) (*services.BookingService, *services.MockBookingWriter, *services.MockBookingReader, *services.MockSummaryCache, *services.MockKafkaWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockWriter := services.NewMockBookingWriter(ctrl)
	mockReader := services.NewMockBookingReader(ctrl)
	mockCache := services.NewMockSummaryCache(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewBookingService(mockWriter, mockReader, mockCache, mockKafka)
	return svc, mockWriter, mockReader, mockCache, mockKafka
}

func TestBookingService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockWriter, _, mockCache, mockKafka := newBookingService(t)
		ctx := context.Background()

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(1), "Swift", 1000, 3).
			Return(int64(10), nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		bookingID, totalCost, err := svc.Create(ctx, 1, "Swift", 1000, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), bookingID)
		assert.Equal(t, 3000, totalCost)
	})

	t.Run("save error", func(t *testing.T) {
		svc, mockWriter, _, _, _ := newBookingService(t)
		ctx := context.Background()

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(1), "Swift", 1000, 3).
			Return(int64(0), errors.New("db error"))

		_, _, err := svc.Create(ctx, 1, "Swift", 1000, 3)
		assert.EqualError(t, err, "db error")
	})

	t.Run("kafka failure does not fail the request", func(t *testing.T) {
		svc, mockWriter, _, mockCache, mockKafka := newBookingService(t)
		ctx := context.Background()

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(1), "Swift", 1000, 3).
			Return(int64(10), nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		bookingID, _, err := svc.Create(ctx, 1, "Swift", 1000, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), bookingID)
	})
}

func TestBookingService_GetByID(t *testing.T) {
	booking := &models.BookingDB{BookingID: 10, UserID: 1, CarName: "Swift", RentPerDay: 1000, Days: 3, Status: models.StatusBooked}

	tests := []struct {
		name      string
		callerID  int64
		booking   *models.BookingDB
		readerErr error
		wantErr   error
	}{
		{name: "owner reads own booking", callerID: 1, booking: booking},
		{name: "booking not found", callerID: 1, booking: nil, wantErr: services.ErrBookingNotFound},
		{name: "foreign booking is forbidden, not not-found", callerID: 2, booking: booking, wantErr: services.ErrNotBookingOwner},
		{name: "reader error", callerID: 1, readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockReader, _, _ := newBookingService(t)
			ctx := context.Background()

			mockReader.EXPECT().
				GetByID(gomock.Any(), int64(10)).
				Return(tt.booking, tt.readerErr)

			got, err := svc.GetByID(ctx, tt.callerID, 10)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, booking.BookingID, got.BookingID)
				assert.Equal(t, 3000, got.TotalCost)
			}
		})
	}
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, _, mockReader, _, _ := newBookingService(t)
	ctx := context.Background()

	mockReader.EXPECT().
		ListByUserID(gomock.Any(), int64(1)).
		Return([]models.BookingDB{
			{BookingID: 10, UserID: 1, RentPerDay: 1000, Days: 3},
			{BookingID: 11, UserID: 1, RentPerDay: 500, Days: 2},
		}, nil)

	bookings, err := svc.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, 3000, bookings[0].TotalCost)
	assert.Equal(t, 1000, bookings[1].TotalCost)
}

func TestBookingService_ListByUser_Empty(t *testing.T) {
	svc, _, mockReader, _, _ := newBookingService(t)
	ctx := context.Background()

	mockReader.EXPECT().
		ListByUserID(gomock.Any(), int64(1)).
		Return(nil, nil)

	bookings, err := svc.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Len(t, bookings, 0)
}

func TestBookingService_Summary(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, _, _, mockCache, _ := newBookingService(t)
		ctx := context.Background()

		cached := &models.BookingSummary{UserID: 1, Username: "alice", TotalBookings: 2, TotalAmountSpent: 4000}
		mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(cached, nil)

		summary, err := svc.Summary(ctx, 1, "alice")
		assert.NoError(t, err)
		assert.Equal(t, cached, summary)
	})

	t.Run("cache miss computes over booked and completed", func(t *testing.T) {
		svc, _, mockReader, mockCache, _ := newBookingService(t)
		ctx := context.Background()

		mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, nil)
		mockReader.EXPECT().
			ListByUserIDAndStatuses(gomock.Any(), int64(1), []string{models.StatusBooked, models.StatusCompleted}).
			Return([]models.BookingDB{
				{BookingID: 10, UserID: 1, RentPerDay: 1000, Days: 3, Status: models.StatusBooked},
				{BookingID: 11, UserID: 1, RentPerDay: 500, Days: 2, Status: models.StatusCompleted},
			}, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), &models.BookingSummary{UserID: 1, Username: "alice", TotalBookings: 2, TotalAmountSpent: 4000}).
			Return(nil)

		summary, err := svc.Summary(ctx, 1, "alice")
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalBookings)
		assert.Equal(t, 4000, summary.TotalAmountSpent)
	})

	t.Run("cache read failure falls through to the database", func(t *testing.T) {
		svc, _, mockReader, mockCache, _ := newBookingService(t)
		ctx := context.Background()

		mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("redis down"))
		mockReader.EXPECT().
			ListByUserIDAndStatuses(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, nil)
		mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		summary, err := svc.Summary(ctx, 1, "alice")
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.TotalBookings)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	owned := &models.BookingDB{BookingID: 10, UserID: 1, CarName: "Swift", RentPerDay: 1000, Days: 3, Status: models.StatusBooked}

	t.Run("success", func(t *testing.T) {
		svc, mockWriter, mockReader, mockCache, mockKafka := newBookingService(t)
		ctx := context.Background()

		updated := *owned
		updated.Status = models.StatusCompleted

		mockReader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(owned, nil)
		mockWriter.EXPECT().UpdateStatus(gomock.Any(), int64(10), models.StatusCompleted).Return(&updated, nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.UpdateStatus(ctx, 1, 10, models.StatusCompleted)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
		assert.Equal(t, 3000, got.TotalCost)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, mockReader, _, _ := newBookingService(t)
		ctx := context.Background()

		mockReader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil)

		got, err := svc.UpdateStatus(ctx, 1, 10, models.StatusCompleted)
		assert.ErrorIs(t, err, services.ErrBookingNotFound)
		assert.Nil(t, got)
	})

	t.Run("not owner", func(t *testing.T) {
		svc, _, mockReader, _, _ := newBookingService(t)
		ctx := context.Background()

		mockReader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(owned, nil)

		got, err := svc.UpdateStatus(ctx, 2, 10, models.StatusCompleted)
		assert.ErrorIs(t, err, services.ErrNotBookingOwner)
		assert.Nil(t, got)
	})
}

func TestBookingService_UpdateDetails(t *testing.T) {
	owned := &models.BookingDB{BookingID: 10, UserID: 1, CarName: "Swift", RentPerDay: 1000, Days: 3, Status: models.StatusBooked}

	t.Run("success", func(t *testing.T) {
		svc, mockWriter, mockReader, mockCache, mockKafka := newBookingService(t)
		ctx := context.Background()

		updated := *owned
		updated.CarName = "Creta"
		updated.RentPerDay = 1500
		updated.Days = 5

		mockReader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(owned, nil)
		mockWriter.EXPECT().UpdateDetails(gomock.Any(), int64(10), "Creta", 1500, 5).Return(&updated, nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.UpdateDetails(ctx, 1, 10, "Creta", 1500, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Creta", got.CarName)
		assert.Equal(t, 7500, got.TotalCost)
	})

	t.Run("not owner", func(t *testing.T) {
		svc, _, mockReader, _, _ := newBookingService(t)
		ctx := context.Background()

		mockReader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(owned, nil)

		got, err := svc.UpdateDetails(ctx, 2, 10, "Creta", 1500, 5)
		assert.ErrorIs(t, err, services.ErrNotBookingOwner)
		assert.Nil(t, got)
	})

	t.Run("writer error", func(t *testing.T) {
		svc, mockWriter, mockReader, _, _ := newBookingService(t)
		ctx := context.Background()

		mockReader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(owned, nil)
		mockWriter.EXPECT().UpdateDetails(gomock.Any(), int64(10), "Creta", 1500, 5).Return(nil, errors.New("db error"))

		got, err := svc.UpdateDetails(ctx, 1, 10, "Creta", 1500, 5)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}
