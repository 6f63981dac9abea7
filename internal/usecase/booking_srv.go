package usecase

import (
	"context"
	"fmt"
	"time"

	"petconnect/internal/data/entity"
	"petconnect/internal/data/repository"
	"petconnect/internal/dto/request"
	"petconnect/internal/dto/response"
	"petconnect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CheckAvailability answers whether the service's walker can take
	// the slot: the walker's weekly schedule must cover it and no
	// overlapping BOOKED or IN_PROGRESS booking may exist.
	CheckAvailability(ctx context.Context, serviceID string, date, start, end string) (*response.Availability, error)
	Create(ctx context.Context, actor entity.Actor, req request.CreateBooking) (*response.Booking, error)
	GetByID(ctx context.Context, actor entity.Actor, id string) (*response.Booking, error)
	List(ctx context.Context, actor entity.Actor, page request.Pagination, status string) (*response.Paginated[response.Booking], error)
	UpdateStatus(ctx context.Context, actor entity.Actor, id string, req request.UpdateBookingStatus) (*response.Booking, error)
	UpdateNotes(ctx context.Context, actor entity.Actor, id string, req request.UpdateBookingNotes) (*response.Booking, error)
	Delete(ctx context.Context, actor entity.Actor, id string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// parseSlot validates date and clock inputs and returns the slot as
// minutes since midnight. Zero-length and inverted ranges are rejected
// here so every later check can assume start < end; slots never cross
// midnight.
func (s *bookingService) parseSlot(date, start, end string) (time.Time, int, int, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("date %q must be in YYYY-MM-DD format", date)
	}

	startMin, err := utils.ParseClock(start)
	if err != nil {
		return time.Time{}, 0, 0, err
	}
	endMin, err := utils.ParseClock(end)
	if err != nil {
		return time.Time{}, 0, 0, err
	}
	if startMin >= endMin {
		return time.Time{}, 0, 0, fmt.Errorf("start time must be before end time")
	}

	return day, startMin, endMin, nil
}

// checkSlot runs the two availability conditions and returns the reason
// a slot is unavailable, or empty when it is free.
func (s *bookingService) checkSlot(ctx context.Context, walkerID uuid.UUID, day time.Time, start, end string) (string, error) {
	schedule, err := s.repo.Schedule.FindCovering(ctx, walkerID, int(day.Weekday()), start, end)
	if err != nil {
		return "", err
	}
	if schedule == nil {
		return "outside working hours", nil
	}

	taken, err := s.repo.Booking.HasOverlapping(ctx, walkerID, day, start, end)
	if err != nil {
		return "", err
	}
	if taken {
		return "slot already booked", nil
	}

	return "", nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, serviceID string, date, start, end string) (*response.Availability, error) {
	svcID, err := utils.ParseUUID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id")
	}

	day, _, _, err := s.parseSlot(date, start, end)
	if err != nil {
		return nil, err
	}

	service, err := s.repo.Service.FindByID(ctx, svcID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service not found")
	}

	reason, err := s.checkSlot(ctx, service.WalkerID, day, start, end)
	if err != nil {
		return nil, err
	}

	return &response.Availability{Available: reason == "", Reason: reason}, nil
}

func (s *bookingService) Create(ctx context.Context, actor entity.Actor, req request.CreateBooking) (*response.Booking, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer profile not found")
	}

	svcID, err := utils.ParseUUID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id")
	}

	day, startMin, endMin, err := s.parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	service, err := s.repo.Service.FindByID(ctx, svcID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service not found")
	}
	if service.Status != entity.ServiceStatusAvailable {
		return nil, fmt.Errorf("service is not available")
	}

	walker, err := s.repo.Walker.FindByID(ctx, service.WalkerID)
	if err != nil {
		return nil, err
	}
	if walker == nil || !walker.IsApproved || !walker.IsAvailable {
		return nil, fmt.Errorf("walker is not available")
	}

	reason, err := s.checkSlot(ctx, service.WalkerID, day, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, fmt.Errorf("%s", reason)
	}

	// The service price is hourly; the slot length sets the total.
	totalPrice := service.Price * float64(endMin-startMin) / 60

	now := time.Now().UTC()
	booking := &entity.Booking{
		Base:       entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		CustomerID: customer.ID,
		WalkerID:   service.WalkerID,
		ServiceID:  service.ID,
		Date:       day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: totalPrice,
		Status:     entity.ServiceStatusBooked,
		Notes:      req.Notes,
	}

	// The pre-checks above are advisory; the repository repeats the
	// overlap check under the walker lock and is what actually holds.
	if err := s.repo.Booking.CreateReserving(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("walker_id", booking.WalkerID.String()),
		zap.String("date", req.Date),
	)

	out := response.FromBooking(booking)
	return &out, nil
}

// load fetches a booking and checks the actor may see it.
func (s *bookingService) load(ctx context.Context, actor entity.Actor, id string) (*entity.Booking, error) {
	bookingID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id")
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	allowed, err := s.canView(ctx, actor, booking)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("access denied")
	}

	return booking, nil
}

func (s *bookingService) canView(ctx context.Context, actor entity.Actor, booking *entity.Booking) (bool, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return true, nil
	case entity.RoleCustomer:
		customer, err := s.repo.Customer.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return false, err
		}
		return customer != nil && customer.ID == booking.CustomerID, nil
	case entity.RoleWalker:
		walker, err := s.repo.Walker.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return false, err
		}
		return walker != nil && walker.ID == booking.WalkerID, nil
	default:
		return false, nil
	}
}

func (s *bookingService) GetByID(ctx context.Context, actor entity.Actor, id string) (*response.Booking, error) {
	booking, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	out := response.FromBooking(booking)
	return &out, nil
}

func (s *bookingService) List(ctx context.Context, actor entity.Actor, page request.Pagination, status string) (*response.Paginated[response.Booking], error) {
	page.Normalize()

	filter := repository.BookingFilter{}
	if status != "" {
		parsed, ok := entity.ParseServiceStatus(status)
		if !ok {
			return nil, fmt.Errorf("invalid status %q", status)
		}
		filter.Status = &parsed
	}

	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleCustomer:
		customer, err := s.repo.Customer.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("customer profile not found")
		}
		filter.CustomerID = &customer.ID
	case entity.RoleWalker:
		walker, err := s.repo.Walker.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if walker == nil {
			return nil, fmt.Errorf("walker profile not found")
		}
		filter.WalkerID = &walker.ID
	default:
		return nil, fmt.Errorf("access denied")
	}

	bookings, err := s.repo.Booking.Find(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := response.NewPaginated(response.FromBookings(bookings), page.Page, page.PerPage, total)
	return &out, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, actor entity.Actor, id string, req request.UpdateBookingStatus) (*response.Booking, error) {
	booking, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	target, ok := entity.ParseServiceStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}

	if err := s.authorizeTransition(actor, target); err != nil {
		return nil, err
	}

	if !entity.CanTransition(booking.Status, target) {
		return nil, fmt.Errorf("cannot transition from %s to %s", booking.Status, target)
	}

	// Terminal states free the service for new bookings.
	release := target == entity.ServiceStatusCancelled || target == entity.ServiceStatusCompleted
	if err := s.repo.Booking.UpdateStatusReleasing(ctx, booking.ID, target, booking.ServiceID, release); err != nil {
		return nil, err
	}
	booking.Status = target

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(target)),
	)

	out := response.FromBooking(booking)
	return &out, nil
}

// authorizeTransition gates transitions by role. Starting and finishing
// a walk belongs to the assigned walker; cancelling is open to the
// customer, the walker and admins. load already proved assignment or
// ownership.
func (s *bookingService) authorizeTransition(actor entity.Actor, target entity.ServiceStatus) error {
	switch target {
	case entity.ServiceStatusInProgress, entity.ServiceStatusCompleted:
		if actor.Role != entity.RoleWalker {
			return fmt.Errorf("access denied")
		}
	case entity.ServiceStatusCancelled:
	default:
		return fmt.Errorf("invalid status %q", target)
	}
	return nil
}

func (s *bookingService) UpdateNotes(ctx context.Context, actor entity.Actor, id string, req request.UpdateBookingNotes) (*response.Booking, error) {
	if actor.Role != entity.RoleCustomer && actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("access denied")
	}

	booking, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.UpdateNotes(ctx, booking.ID, req.Notes); err != nil {
		return nil, err
	}
	booking.Notes = req.Notes

	out := response.FromBooking(booking)
	return &out, nil
}

func (s *bookingService) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if actor.Role != entity.RoleAdmin {
		return fmt.Errorf("access denied")
	}

	booking, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}

	return s.repo.Booking.DeleteReleasing(ctx, booking.ID, booking.ServiceID)
}
