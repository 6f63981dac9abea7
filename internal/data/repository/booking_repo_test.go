package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func testBooking() *entity.Booking {
	now := time.Now().UTC()
	return &entity.Booking{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CustomerID: uuid.New(),
		WalkerID:   uuid.New(),
		ServiceID:  uuid.New(),
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "10:00",
		TotalPrice: 25,
		Status:     entity.ServiceStatusBooked,
	}
}

func TestCreateReserving(t *testing.T) {
	t.Run("reserves under the walker lock", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		booking := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM walkers WHERE id = \\$1 FOR UPDATE").
			WithArgs(booking.WalkerID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(booking.WalkerID))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(booking.WalkerID, booking.Date, booking.StartTime, booking.EndTime).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO bookings").
			WithArgs(booking.ID, booking.CustomerID, booking.WalkerID, booking.ServiceID,
				booking.Date, booking.StartTime, booking.EndTime, booking.TotalPrice,
				booking.Status, booking.Notes, booking.CreatedAt, booking.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE services SET status = 'BOOKED'").
			WithArgs(booking.ServiceID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		repo := NewBookingRepository(mock, zap.NewNop())
		if err := repo.CreateReserving(context.Background(), booking); err != nil {
			t.Fatalf("CreateReserving: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("conflict under the lock rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		booking := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM walkers WHERE id = \\$1 FOR UPDATE").
			WithArgs(booking.WalkerID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(booking.WalkerID))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(booking.WalkerID, booking.Date, booking.StartTime, booking.EndTime).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		repo := NewBookingRepository(mock, zap.NewNop())
		if err := repo.CreateReserving(context.Background(), booking); !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

func TestUpdateStatusReleasing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	bookingID := uuid.New()
	serviceID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(bookingID, entity.ServiceStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE services SET status = 'AVAILABLE'").
		WithArgs(serviceID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewBookingRepository(mock, zap.NewNop())
	err = repo.UpdateStatusReleasing(context.Background(), bookingID, entity.ServiceStatusCancelled, serviceID, true)
	if err != nil {
		t.Fatalf("UpdateStatusReleasing: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
