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

// WalkerService covers everything a walker manages: the public profile,
// the services on offer, the weekly schedule and the WhatsApp contact
// setting.
type WalkerService interface {
	GetProfile(ctx context.Context, walkerID string) (*response.Walker, error)
	UpdateWhatsApp(ctx context.Context, actor entity.Actor, req request.UpdateWhatsApp) (*response.Walker, error)

	CreateService(ctx context.Context, actor entity.Actor, req request.CreateService) (*response.Service, error)
	GetService(ctx context.Context, id string) (*response.Service, error)
	ListServices(ctx context.Context, req request.ListServices) (*response.Paginated[response.Service], error)
	UpdateService(ctx context.Context, actor entity.Actor, id string, req request.UpdateService) (*response.Service, error)
	DeleteService(ctx context.Context, actor entity.Actor, id string) error

	CreateSchedule(ctx context.Context, actor entity.Actor, req request.CreateSchedule) (*response.Schedule, error)
	ListSchedules(ctx context.Context, walkerID string) ([]response.Schedule, error)
	UpdateSchedule(ctx context.Context, actor entity.Actor, id string, req request.UpdateSchedule) (*response.Schedule, error)
	DeleteSchedule(ctx context.Context, actor entity.Actor, id string) error
}

type walkerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWalkerService(repo *repository.Repository, log *zap.Logger) WalkerService {
	return &walkerService{
		repo: repo,
		log:  log.With(zap.String("service", "walker")),
	}
}

func (s *walkerService) profile(ctx context.Context, actor entity.Actor) (*entity.Walker, error) {
	walker, err := s.repo.Walker.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if walker == nil {
		return nil, fmt.Errorf("walker profile not found")
	}
	return walker, nil
}

func (s *walkerService) GetProfile(ctx context.Context, walkerID string) (*response.Walker, error) {
	id, err := utils.ParseUUID(walkerID)
	if err != nil {
		return nil, fmt.Errorf("invalid walker id")
	}

	walker, err := s.repo.Walker.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if walker == nil || !walker.IsApproved {
		return nil, fmt.Errorf("walker not found")
	}

	out := response.FromWalker(walker)
	return &out, nil
}

func (s *walkerService) UpdateWhatsApp(ctx context.Context, actor entity.Actor, req request.UpdateWhatsApp) (*response.Walker, error) {
	walker, err := s.profile(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Enabled && req.WhatsApp == nil && walker.WhatsApp == nil {
		return nil, fmt.Errorf("whatsapp number is required to enable contact")
	}

	number := walker.WhatsApp
	if req.WhatsApp != nil {
		number = req.WhatsApp
	}

	if err := s.repo.Walker.UpdateWhatsApp(ctx, walker.ID, number, req.Enabled); err != nil {
		return nil, err
	}
	walker.WhatsApp = number
	walker.WhatsAppEnabled = req.Enabled

	out := response.FromWalker(walker)
	return &out, nil
}

func (s *walkerService) CreateService(ctx context.Context, actor entity.Actor, req request.CreateService) (*response.Service, error) {
	walker, err := s.profile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !walker.IsApproved {
		return nil, fmt.Errorf("walker is not approved")
	}

	now := time.Now().UTC()
	service := &entity.Service{
		Base:            entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		WalkerID:        walker.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Status:          entity.ServiceStatusAvailable,
		IsActive:        true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		return nil, err
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("walker_id", walker.ID.String()),
	)

	out := response.FromService(service)
	return &out, nil
}

func (s *walkerService) GetService(ctx context.Context, id string) (*response.Service, error) {
	serviceID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid service id")
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service not found")
	}

	out := response.FromService(service)
	summary, err := s.repo.Review.SummaryForService(ctx, service.ID)
	if err != nil {
		// Rating enrichment is best effort, the service itself is the answer.
		s.log.Warn("Failed to load rating summary",
			zap.Error(err),
			zap.String("service_id", service.ID.String()),
		)
	} else if summary != nil {
		out.AvgRating = summary.Average
		out.ReviewCount = summary.Count
	}

	return &out, nil
}

func (s *walkerService) ListServices(ctx context.Context, req request.ListServices) (*response.Paginated[response.Service], error) {
	req.Normalize()

	filter := repository.ServiceFilter{
		Search:   req.Search,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
	if req.WalkerID != nil {
		id, err := utils.ParseUUID(*req.WalkerID)
		if err != nil {
			return nil, fmt.Errorf("invalid walker id")
		}
		filter.WalkerID = &id
	}

	services, err := s.repo.Service.FindAvailable(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Service.CountAvailable(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := response.NewPaginated(response.FromServices(services), req.Page, req.PerPage, total)
	return &out, nil
}

// ownedService loads a service and verifies the actor's walker profile
// owns it. Admins bypass the ownership check.
func (s *walkerService) ownedService(ctx context.Context, actor entity.Actor, id string) (*entity.Service, error) {
	serviceID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid service id")
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service not found")
	}

	if actor.Role == entity.RoleAdmin {
		return service, nil
	}

	walker, err := s.profile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if walker.ID != service.WalkerID {
		return nil, fmt.Errorf("access denied")
	}

	return service, nil
}

func (s *walkerService) UpdateService(ctx context.Context, actor entity.Actor, id string, req request.UpdateService) (*response.Service, error) {
	service, err := s.ownedService(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes

	if err := s.repo.Service.Update(ctx, service); err != nil {
		return nil, err
	}

	out := response.FromService(service)
	return &out, nil
}

func (s *walkerService) DeleteService(ctx context.Context, actor entity.Actor, id string) error {
	service, err := s.ownedService(ctx, actor, id)
	if err != nil {
		return err
	}
	if service.Status == entity.ServiceStatusBooked || service.Status == entity.ServiceStatusInProgress {
		return fmt.Errorf("service has an active booking")
	}

	return s.repo.Service.Deactivate(ctx, service.ID)
}

// validateScheduleRange rejects malformed and inverted clock ranges.
func validateScheduleRange(start, end string) error {
	startMin, err := utils.ParseClock(start)
	if err != nil {
		return err
	}
	endMin, err := utils.ParseClock(end)
	if err != nil {
		return err
	}
	if startMin >= endMin {
		return fmt.Errorf("start time must be before end time")
	}
	return nil
}

func (s *walkerService) CreateSchedule(ctx context.Context, actor entity.Actor, req request.CreateSchedule) (*response.Schedule, error) {
	walker, err := s.profile(ctx, actor)
	if err != nil {
		return nil, err
	}

	if err := validateScheduleRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	overlaps, err := s.repo.Schedule.HasOverlapping(ctx, walker.ID, req.DayOfWeek, req.StartTime, req.EndTime, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, fmt.Errorf("schedule overlaps an existing window")
	}

	now := time.Now().UTC()
	schedule := &entity.Schedule{
		Base:      entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		WalkerID:  walker.ID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		return nil, err
	}

	out := response.FromSchedule(schedule)
	return &out, nil
}

func (s *walkerService) ListSchedules(ctx context.Context, walkerID string) ([]response.Schedule, error) {
	id, err := utils.ParseUUID(walkerID)
	if err != nil {
		return nil, fmt.Errorf("invalid walker id")
	}

	schedules, err := s.repo.Schedule.FindByWalker(ctx, id)
	if err != nil {
		return nil, err
	}

	return response.FromSchedules(schedules), nil
}

func (s *walkerService) ownedSchedule(ctx context.Context, actor entity.Actor, id string) (*entity.Schedule, error) {
	scheduleID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule id")
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule not found")
	}

	if actor.Role == entity.RoleAdmin {
		return schedule, nil
	}

	walker, err := s.profile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if walker.ID != schedule.WalkerID {
		return nil, fmt.Errorf("access denied")
	}

	return schedule, nil
}

func (s *walkerService) UpdateSchedule(ctx context.Context, actor entity.Actor, id string, req request.UpdateSchedule) (*response.Schedule, error) {
	schedule, err := s.ownedSchedule(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := validateScheduleRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	overlaps, err := s.repo.Schedule.HasOverlapping(ctx, schedule.WalkerID, req.DayOfWeek, req.StartTime, req.EndTime, schedule.ID)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, fmt.Errorf("schedule overlaps an existing window")
	}

	schedule.DayOfWeek = req.DayOfWeek
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	schedule.IsActive = req.IsActive

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		return nil, err
	}

	out := response.FromSchedule(schedule)
	return &out, nil
}

func (s *walkerService) DeleteSchedule(ctx context.Context, actor entity.Actor, id string) error {
	schedule, err := s.ownedSchedule(ctx, actor, id)
	if err != nil {
		return err
	}

	return s.repo.Schedule.Delete(ctx, schedule.ID)
}
