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

type WalkerRepository interface {
	Create(ctx context.Context, walker *entity.Walker) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Walker, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Walker, error)
	Approve(ctx context.Context, id uuid.UUID) error
	UpdateWhatsApp(ctx context.Context, id uuid.UUID, whatsapp *string, enabled bool) error
}

type walkerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWalkerRepository(db database.PgxIface, log *zap.Logger) WalkerRepository {
	return &walkerRepository{
		db:  db,
		log: log.With(zap.String("repository", "walker")),
	}
}

const walkerColumns = `id, user_id, name, description, phone, address, experience_years,
	price_per_hour, is_available, is_approved, whatsapp, whatsapp_enabled, created_at, updated_at`

func (r *walkerRepository) Create(ctx context.Context, walker *entity.Walker) error {
	query := `
		INSERT INTO walkers (id, user_id, name, description, phone, address, experience_years,
		                     price_per_hour, is_available, is_approved, whatsapp, whatsapp_enabled,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		walker.ID,
		walker.UserID,
		walker.Name,
		walker.Description,
		walker.Phone,
		walker.Address,
		walker.ExperienceYears,
		walker.PricePerHour,
		walker.IsAvailable,
		walker.IsApproved,
		walker.WhatsApp,
		walker.WhatsAppEnabled,
		walker.CreatedAt,
		walker.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create walker profile",
			zap.Error(err),
			zap.String("user_id", walker.UserID.String()),
		)
		return fmt.Errorf("create walker profile for user %s: %w", walker.UserID.String(), err)
	}

	return nil
}

func (r *walkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Walker, error) {
	query := `SELECT ` + walkerColumns + ` FROM walkers WHERE id = $1`

	return r.scanWalker(ctx, query, id)
}

func (r *walkerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Walker, error) {
	query := `SELECT ` + walkerColumns + ` FROM walkers WHERE user_id = $1`

	return r.scanWalker(ctx, query, userID)
}

func (r *walkerRepository) Approve(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE walkers SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to approve walker",
			zap.Error(err),
			zap.String("walker_id", id.String()),
		)
		return fmt.Errorf("approve walker %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("walker %s not found", id.String())
	}

	return nil
}

func (r *walkerRepository) UpdateWhatsApp(ctx context.Context, id uuid.UUID, whatsapp *string, enabled bool) error {
	query := `UPDATE walkers SET whatsapp = $2, whatsapp_enabled = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, whatsapp, enabled)
	if err != nil {
		r.log.Error("Failed to update walker whatsapp config",
			zap.Error(err),
			zap.String("walker_id", id.String()),
		)
		return fmt.Errorf("update walker %s whatsapp config: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("walker %s not found", id.String())
	}

	return nil
}

func (r *walkerRepository) scanWalker(ctx context.Context, query string, arg any) (*entity.Walker, error) {
	var walker entity.Walker
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&walker.ID,
		&walker.UserID,
		&walker.Name,
		&walker.Description,
		&walker.Phone,
		&walker.Address,
		&walker.ExperienceYears,
		&walker.PricePerHour,
		&walker.IsAvailable,
		&walker.IsApproved,
		&walker.WhatsApp,
		&walker.WhatsAppEnabled,
		&walker.CreatedAt,
		&walker.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find walker", zap.Error(err))
		return nil, fmt.Errorf("find walker: %w", err)
	}

	return &walker, nil
}
