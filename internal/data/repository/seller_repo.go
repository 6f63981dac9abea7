package repository

import (
	"context"
	"fmt"

	"petconnect/internal/data/entity"
	"petconnect/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type sellerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSellerRepository(db database.PgxIface, log *zap.Logger) SellerRepository {
	return &sellerRepository{
		db:  db,
		log: log.With(zap.String("repository", "seller")),
	}
}

func (r *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, user_id, store_name, description, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		seller.ID,
		seller.UserID,
		seller.StoreName,
		seller.Description,
		seller.IsApproved,
		seller.CreatedAt,
		seller.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seller profile",
			zap.Error(err),
			zap.String("user_id", seller.UserID.String()),
		)
		return fmt.Errorf("create seller profile for user %s: %w", seller.UserID.String(), err)
	}

	return nil
}

func (r *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	query := `
		SELECT id, user_id, store_name, description, is_approved, created_at, updated_at
		FROM sellers
		WHERE id = $1
	`

	return r.scanSeller(ctx, query, id)
}

func (r *sellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	query := `
		SELECT id, user_id, store_name, description, is_approved, created_at, updated_at
		FROM sellers
		WHERE user_id = $1
	`

	return r.scanSeller(ctx, query, userID)
}

func (r *sellerRepository) Approve(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE sellers SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to approve seller",
			zap.Error(err),
			zap.String("seller_id", id.String()),
		)
		return fmt.Errorf("approve seller %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seller %s not found", id.String())
	}

	return nil
}

func (r *sellerRepository) scanSeller(ctx context.Context, query string, arg any) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&seller.ID,
		&seller.UserID,
		&seller.StoreName,
		&seller.Description,
		&seller.IsApproved,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seller", zap.Error(err))
		return nil, fmt.Errorf("find seller: %w", err)
	}

	return &seller, nil
}
