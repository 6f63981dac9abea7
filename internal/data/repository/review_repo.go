package repository

import (
	"context"
	"fmt"

	"petconnect/internal/data/entity"
	"petconnect/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewFilter struct {
	ProductID *uuid.UUID
	ServiceID *uuid.UUID
	WalkerID  *uuid.UUID
}

// RatingSummary aggregates review ratings for a subject.
type RatingSummary struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Find(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*entity.Review, error)
	Count(ctx context.Context, filter ReviewFilter) (int64, error)
	SummaryForService(ctx context.Context, serviceID uuid.UUID) (*RatingSummary, error)
	SummaryForProduct(ctx context.Context, productID uuid.UUID) (*RatingSummary, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, product_id, service_id, walker_id, rating, comment, is_active, created_at, updated_at`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, product_id, service_id, walker_id, rating, comment, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.ProductID,
		review.ServiceID,
		review.WalkerID,
		review.Rating,
		review.Comment,
		review.IsActive,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) filterClause(filter ReviewFilter) (string, []any) {
	clause := " WHERE is_active = true"
	args := []any{}

	add := func(condition string, arg any) {
		args = append(args, arg)
		clause += " AND " + fmt.Sprintf(condition, len(args))
	}

	if filter.ProductID != nil {
		add("product_id = $%d", *filter.ProductID)
	}
	if filter.ServiceID != nil {
		add("service_id = $%d", *filter.ServiceID)
	}
	if filter.WalkerID != nil {
		add("walker_id = $%d", *filter.WalkerID)
	}

	return clause, args
}

func (r *reviewRepository) Find(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*entity.Review, error) {
	clause, args := r.filterClause(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+reviewColumns+` FROM reviews%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		clause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.ProductID,
			&review.ServiceID,
			&review.WalkerID,
			&review.Rating,
			&review.Comment,
			&review.IsActive,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context, filter ReviewFilter) (int64, error) {
	clause, args := r.filterClause(filter)
	query := `SELECT COUNT(*) FROM reviews` + clause

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) summary(ctx context.Context, column string, id uuid.UUID) (*RatingSummary, error) {
	query := fmt.Sprintf(`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE %s = $1 AND is_active = true`, column)

	var summary RatingSummary
	if err := r.db.QueryRow(ctx, query, id).Scan(&summary.Average, &summary.Count); err != nil {
		r.log.Error("Failed to summarize reviews",
			zap.Error(err),
			zap.String("subject_id", id.String()),
		)
		return nil, fmt.Errorf("summarize reviews for %s: %w", id.String(), err)
	}

	return &summary, nil
}

func (r *reviewRepository) SummaryForService(ctx context.Context, serviceID uuid.UUID) (*RatingSummary, error) {
	return r.summary(ctx, "service_id", serviceID)
}

func (r *reviewRepository) SummaryForProduct(ctx context.Context, productID uuid.UUID) (*RatingSummary, error) {
	return r.summary(ctx, "product_id", productID)
}
