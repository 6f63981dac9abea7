package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/data/entity"
	"petconnect/internal/data/repository"
	"petconnect/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingFixture struct {
	customerUserID uuid.UUID
	walkerUserID   uuid.UUID
	customerID     uuid.UUID
	walkerID       uuid.UUID
	serviceID      uuid.UUID

	customers *stubCustomerRepo
	walkers   *stubWalkerRepo
	services  *stubServiceRepo
	schedules *stubScheduleRepo
	bookings  *stubBookingRepo

	service BookingService
}

// newBookingFixture wires a happy-path world: an approved available
// walker with a 08:00-18:00 schedule every day, one AVAILABLE service,
// and no existing bookings.
func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		customerUserID: uuid.New(),
		walkerUserID:   uuid.New(),
		customerID:     uuid.New(),
		walkerID:       uuid.New(),
		serviceID:      uuid.New(),
	}

	f.customers = &stubCustomerRepo{
		FindByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
			if userID == f.customerUserID {
				return &entity.Customer{Base: entity.Base{ID: f.customerID}, UserID: userID}, nil
			}
			return nil, nil
		},
	}
	f.walkers = &stubWalkerRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Walker, error) {
			if id == f.walkerID {
				return &entity.Walker{
					Base:        entity.Base{ID: id},
					UserID:      f.walkerUserID,
					IsApproved:  true,
					IsAvailable: true,
				}, nil
			}
			return nil, nil
		},
		FindByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*entity.Walker, error) {
			if userID == f.walkerUserID {
				return &entity.Walker{
					Base:        entity.Base{ID: f.walkerID},
					UserID:      userID,
					IsApproved:  true,
					IsAvailable: true,
				}, nil
			}
			return nil, nil
		},
	}
	f.services = &stubServiceRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			if id == f.serviceID {
				return &entity.Service{
					Base:            entity.Base{ID: id},
					WalkerID:        f.walkerID,
					Name:            "Morning walk",
					Price:           25,
					DurationMinutes: 60,
					Status:          entity.ServiceStatusAvailable,
					IsActive:        true,
				}, nil
			}
			return nil, nil
		},
	}
	f.schedules = &stubScheduleRepo{
		FindCoveringFn: func(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string) (*entity.Schedule, error) {
			return &entity.Schedule{
				Base:      entity.Base{ID: uuid.New()},
				WalkerID:  walkerID,
				DayOfWeek: dayOfWeek,
				StartTime: "08:00",
				EndTime:   "18:00",
				IsActive:  true,
			}, nil
		},
	}
	f.bookings = &stubBookingRepo{}

	repo := &repository.Repository{
		Customer: f.customers,
		Walker:   f.walkers,
		Service:  f.services,
		Schedule: f.schedules,
		Booking:  f.bookings,
	}
	f.service = NewBookingService(repo, zap.NewNop())

	return f
}

func (f *bookingFixture) customer() entity.Actor {
	return entity.Actor{UserID: f.customerUserID, Role: entity.RoleCustomer}
}

func (f *bookingFixture) walker() entity.Actor {
	return entity.Actor{UserID: f.walkerUserID, Role: entity.RoleWalker}
}

func TestCheckAvailability(t *testing.T) {
	t.Run("free slot", func(t *testing.T) {
		f := newBookingFixture()

		got, err := f.service.CheckAvailability(context.Background(), f.serviceID.String(), "2026-09-07", "09:00", "10:00")
		if err != nil {
			t.Fatalf("CheckAvailability: %v", err)
		}
		if !got.Available {
			t.Errorf("expected available, got reason %q", got.Reason)
		}
	})

	t.Run("outside schedule", func(t *testing.T) {
		f := newBookingFixture()
		f.schedules.FindCoveringFn = func(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string) (*entity.Schedule, error) {
			return nil, nil
		}

		got, err := f.service.CheckAvailability(context.Background(), f.serviceID.String(), "2026-09-07", "06:00", "07:00")
		if err != nil {
			t.Fatalf("CheckAvailability: %v", err)
		}
		if got.Available {
			t.Error("expected unavailable outside the schedule")
		}
		if got.Reason != "outside working hours" {
			t.Errorf("reason = %q", got.Reason)
		}
	})

	t.Run("overlapping booking", func(t *testing.T) {
		f := newBookingFixture()
		f.bookings.HasOverlappingFn = func(ctx context.Context, walkerID uuid.UUID, date time.Time, start, end string) (bool, error) {
			return true, nil
		}

		got, err := f.service.CheckAvailability(context.Background(), f.serviceID.String(), "2026-09-07", "09:00", "10:00")
		if err != nil {
			t.Fatalf("CheckAvailability: %v", err)
		}
		if got.Available {
			t.Error("expected unavailable when an overlapping booking exists")
		}
		if got.Reason != "slot already booked" {
			t.Errorf("reason = %q", got.Reason)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.service.CheckAvailability(context.Background(), uuid.New().String(), "2026-09-07", "09:00", "10:00")
		if err == nil || err.Error() != "service not found" {
			t.Errorf("expected service not found, got %v", err)
		}
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newBookingFixture()

		var created *entity.Booking
		f.bookings.CreateReservingFn = func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		}

		got, err := f.service.Create(context.Background(), f.customer(), request.CreateBooking{
			ServiceID: f.serviceID.String(),
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created == nil {
			t.Fatal("CreateReserving was never called")
		}
		if created.Status != entity.ServiceStatusBooked {
			t.Errorf("status = %s, want BOOKED", created.Status)
		}
		if created.CustomerID != f.customerID {
			t.Error("booking not attributed to the acting customer")
		}
		if created.WalkerID != f.walkerID {
			t.Error("walker not taken from the service")
		}
		if created.TotalPrice != 25 {
			t.Errorf("total price = %v, want 25 for one hour at 25/h", created.TotalPrice)
		}
		if got.Status != "BOOKED" {
			t.Errorf("response status = %s", got.Status)
		}
	})

	t.Run("total scales with slot length", func(t *testing.T) {
		f := newBookingFixture()

		var created *entity.Booking
		f.bookings.CreateReservingFn = func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		}

		_, err := f.service.Create(context.Background(), f.customer(), request.CreateBooking{
			ServiceID: f.serviceID.String(),
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "10:30",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.TotalPrice != 37.5 {
			t.Errorf("total price = %v, want 37.5 for 90 minutes at 25/h", created.TotalPrice)
		}
	})

	t.Run("zero length slot rejected", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.service.Create(context.Background(), f.customer(), request.CreateBooking{
			ServiceID: f.serviceID.String(),
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "09:00",
		})
		if err == nil {
			t.Fatal("expected error for zero-length slot")
		}
	})

	t.Run("lost race surfaces slot conflict", func(t *testing.T) {
		f := newBookingFixture()
		f.bookings.CreateReservingFn = func(ctx context.Context, booking *entity.Booking) error {
			return repository.ErrSlotTaken
		}

		_, err := f.service.Create(context.Background(), f.customer(), request.CreateBooking{
			ServiceID: f.serviceID.String(),
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		if !errors.Is(err, repository.ErrSlotTaken) {
			t.Errorf("expected ErrSlotTaken, got %v", err)
		}
	})

	t.Run("service already booked", func(t *testing.T) {
		f := newBookingFixture()
		f.services.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			return &entity.Service{
				Base:     entity.Base{ID: id},
				WalkerID: f.walkerID,
				Status:   entity.ServiceStatusBooked,
				IsActive: true,
			}, nil
		}

		_, err := f.service.Create(context.Background(), f.customer(), request.CreateBooking{
			ServiceID: f.serviceID.String(),
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		if err == nil || err.Error() != "service is not available" {
			t.Errorf("expected service is not available, got %v", err)
		}
	})

	t.Run("unapproved walker", func(t *testing.T) {
		f := newBookingFixture()
		f.walkers.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Walker, error) {
			return &entity.Walker{Base: entity.Base{ID: id}, IsApproved: false, IsAvailable: true}, nil
		}

		_, err := f.service.Create(context.Background(), f.customer(), request.CreateBooking{
			ServiceID: f.serviceID.String(),
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		if err == nil || err.Error() != "walker is not available" {
			t.Errorf("expected walker is not available, got %v", err)
		}
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setBooking := func(f *bookingFixture, status entity.ServiceStatus) uuid.UUID {
		id := uuid.New()
		f.bookings.FindByIDFn = func(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
			if bookingID == id {
				return &entity.Booking{
					Base:       entity.Base{ID: id},
					CustomerID: f.customerID,
					WalkerID:   f.walkerID,
					ServiceID:  f.serviceID,
					Status:     status,
				}, nil
			}
			return nil, nil
		}
		return id
	}

	t.Run("walker starts a booked walk", func(t *testing.T) {
		f := newBookingFixture()
		id := setBooking(f, entity.ServiceStatusBooked)

		var released bool
		f.bookings.UpdateStatusReleasingFn = func(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error {
			released = release
			return nil
		}

		got, err := f.service.UpdateStatus(context.Background(), f.walker(), id.String(), request.UpdateBookingStatus{Status: "IN_PROGRESS"})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.Status != "IN_PROGRESS" {
			t.Errorf("status = %s", got.Status)
		}
		if released {
			t.Error("service must stay reserved while the walk runs")
		}
	})

	t.Run("completion releases the service", func(t *testing.T) {
		f := newBookingFixture()
		id := setBooking(f, entity.ServiceStatusInProgress)

		var released bool
		f.bookings.UpdateStatusReleasingFn = func(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error {
			released = release
			return nil
		}

		if _, err := f.service.UpdateStatus(context.Background(), f.walker(), id.String(), request.UpdateBookingStatus{Status: "COMPLETED"}); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if !released {
			t.Error("completing must release the service")
		}
	})

	t.Run("customer cancels own booking", func(t *testing.T) {
		f := newBookingFixture()
		id := setBooking(f, entity.ServiceStatusBooked)

		var released bool
		f.bookings.UpdateStatusReleasingFn = func(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error {
			released = release
			return nil
		}

		if _, err := f.service.UpdateStatus(context.Background(), f.customer(), id.String(), request.UpdateBookingStatus{Status: "CANCELLED"}); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if !released {
			t.Error("cancelling must release the service")
		}
	})

	t.Run("customer cannot start a walk", func(t *testing.T) {
		f := newBookingFixture()
		id := setBooking(f, entity.ServiceStatusBooked)

		_, err := f.service.UpdateStatus(context.Background(), f.customer(), id.String(), request.UpdateBookingStatus{Status: "IN_PROGRESS"})
		if err == nil || err.Error() != "access denied" {
			t.Errorf("expected access denied, got %v", err)
		}
	})

	t.Run("terminal state is frozen", func(t *testing.T) {
		f := newBookingFixture()
		id := setBooking(f, entity.ServiceStatusCompleted)

		_, err := f.service.UpdateStatus(context.Background(), f.walker(), id.String(), request.UpdateBookingStatus{Status: "CANCELLED"})
		if err == nil {
			t.Fatal("expected transition out of COMPLETED to fail")
		}
	})

	t.Run("stranger cannot touch the booking", func(t *testing.T) {
		f := newBookingFixture()
		id := setBooking(f, entity.ServiceStatusBooked)

		stranger := entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
		_, err := f.service.UpdateStatus(context.Background(), stranger, id.String(), request.UpdateBookingStatus{Status: "CANCELLED"})
		if err == nil || err.Error() != "access denied" {
			t.Errorf("expected access denied, got %v", err)
		}
	})
}
