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

type ReviewService interface {
	Create(ctx context.Context, actor entity.Actor, req request.CreateReview) (*response.Review, error)
	List(ctx context.Context, req request.ListReviews) (*response.Paginated[response.Review], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, actor entity.Actor, req request.CreateReview) (*response.Review, error) {
	subjects := 0
	for _, id := range []*string{req.ProductID, req.ServiceID, req.WalkerID} {
		if id != nil {
			subjects++
		}
	}
	if subjects != 1 {
		return nil, fmt.Errorf("review must target exactly one of a product, a service or a walker")
	}

	now := time.Now().UTC()
	review := &entity.Review{
		Base:     entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		UserID:   actor.UserID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		IsActive: true,
	}

	switch {
	case req.ProductID != nil:
		id, err := utils.ParseUUID(*req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id")
		}
		product, err := s.repo.Product.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, fmt.Errorf("product not found")
		}
		review.ProductID = &product.ID
	case req.ServiceID != nil:
		id, err := utils.ParseUUID(*req.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("invalid service id")
		}
		service, err := s.repo.Service.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if service == nil || !service.IsActive {
			return nil, fmt.Errorf("service not found")
		}
		review.ServiceID = &service.ID
	case req.WalkerID != nil:
		id, err := utils.ParseUUID(*req.WalkerID)
		if err != nil {
			return nil, fmt.Errorf("invalid walker id")
		}
		walker, err := s.repo.Walker.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if walker == nil {
			return nil, fmt.Errorf("walker not found")
		}
		review.WalkerID = &walker.ID
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.Int("rating", review.Rating),
	)

	out := response.FromReview(review)
	return &out, nil
}

func (s *reviewService) List(ctx context.Context, req request.ListReviews) (*response.Paginated[response.Review], error) {
	req.Normalize()

	filter := repository.ReviewFilter{}
	parse := func(raw *string, target **uuid.UUID, label string) error {
		if raw == nil {
			return nil
		}
		id, err := utils.ParseUUID(*raw)
		if err != nil {
			return fmt.Errorf("invalid %s id", label)
		}
		*target = &id
		return nil
	}
	if err := parse(req.ProductID, &filter.ProductID, "product"); err != nil {
		return nil, err
	}
	if err := parse(req.ServiceID, &filter.ServiceID, "service"); err != nil {
		return nil, err
	}
	if err := parse(req.WalkerID, &filter.WalkerID, "walker"); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.Find(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Review.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := response.NewPaginated(response.FromReviews(reviews), req.Page, req.PerPage, total)
	return &out, nil
}
