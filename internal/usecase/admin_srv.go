package usecase

import (
	"context"
	"fmt"

	"petconnect/internal/data/repository"
	"petconnect/pkg/utils"

	"go.uber.org/zap"
)

// AdminService holds the approval workflow. Sellers and walkers are
// created unapproved and stay off the marketplace until approved here.
type AdminService interface {
	ApproveSeller(ctx context.Context, id string) error
	ApproveWalker(ctx context.Context, id string) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ApproveSeller(ctx context.Context, id string) error {
	sellerID, err := utils.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("invalid seller id")
	}

	seller, err := s.repo.Seller.FindByID(ctx, sellerID)
	if err != nil {
		return err
	}
	if seller == nil {
		return fmt.Errorf("seller not found")
	}

	if err := s.repo.Seller.Approve(ctx, seller.ID); err != nil {
		return err
	}

	s.log.Info("Seller approved", zap.String("seller_id", seller.ID.String()))
	return nil
}

func (s *adminService) ApproveWalker(ctx context.Context, id string) error {
	walkerID, err := utils.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("invalid walker id")
	}

	walker, err := s.repo.Walker.FindByID(ctx, walkerID)
	if err != nil {
		return err
	}
	if walker == nil {
		return fmt.Errorf("walker not found")
	}

	if err := s.repo.Walker.Approve(ctx, walker.ID); err != nil {
		return err
	}

	s.log.Info("Walker approved", zap.String("walker_id", walker.ID.String()))
	return nil
}
