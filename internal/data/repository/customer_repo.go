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

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, user_id, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.UserID,
		customer.Phone,
		customer.Address,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer profile",
			zap.Error(err),
			zap.String("user_id", customer.UserID.String()),
		)
		return fmt.Errorf("create customer profile for user %s: %w", customer.UserID.String(), err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, phone, address, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	return r.scanCustomer(ctx, query, id)
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, phone, address, created_at, updated_at
		FROM customers
		WHERE user_id = $1
	`

	return r.scanCustomer(ctx, query, userID)
}

func (r *customerRepository) scanCustomer(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&customer.ID,
		&customer.UserID,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer", zap.Error(err))
		return nil, fmt.Errorf("find customer: %w", err)
	}

	return &customer, nil
}
