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

// OrderFilter scopes order listings per role. CustomerID limits to the
// customer's own orders; SellerID and WalkerID limit to orders carrying
// at least one line owned by that seller or walker.
type OrderFilter struct {
	CustomerID *uuid.UUID
	SellerID   *uuid.UUID
	WalkerID   *uuid.UUID
	Status     *entity.OrderStatus
}

type OrderRepository interface {
	// Create inserts the order and its items in one transaction,
	// decrementing stock for every product line with a conditional
	// update. A line whose product lacks stock aborts the whole
	// transaction with ErrInsufficientStock.
	Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	Find(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) error
	// ExistsItemBySeller reports whether the order carries a product
	// line owned by the seller.
	ExistsItemBySeller(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error)
	// ExistsItemByWalker reports whether the order carries a service
	// line owned by the walker.
	ExistsItemByWalker(ctx context.Context, orderID, walkerID uuid.UUID) (bool, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_number, customer_id, total_amount, status, payment_status, notes, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, order_number, customer_id, total_amount, status, payment_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.OrderNumber,
		order.CustomerID,
		order.TotalAmount,
		order.Status,
		order.PaymentStatus,
		order.Notes,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
		return fmt.Errorf("insert order %s: %w", order.OrderNumber, err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, service_id, quantity, price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	// Decrement guarded by the stock predicate so two concurrent orders
	// can never both take the last unit. Zero rows means the stock ran
	// out between validation and commit.
	decrementQuery := `UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id = $1 AND stock >= $2`

	for _, item := range items {
		if item.ProductID != nil {
			result, err := tx.Exec(ctx, decrementQuery, *item.ProductID, item.Quantity)
			if err != nil {
				r.log.Error("Failed to decrement stock",
					zap.Error(err),
					zap.String("product_id", item.ProductID.String()),
				)
				return fmt.Errorf("decrement stock for product %s: %w", item.ProductID.String(), err)
			}
			if result.RowsAffected() == 0 {
				return ErrInsufficientStock
			}
		}

		_, err = tx.Exec(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.ServiceID,
			item.Quantity,
			item.Price,
			item.Subtotal,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.String("order_id", item.OrderID.String()),
			)
			return fmt.Errorf("insert item for order %s: %w", item.OrderID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction", zap.Error(err))
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerID,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentStatus,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := r.scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, service_id, quantity, price, subtotal, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to list order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("list items for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ServiceID,
			&item.Quantity,
			&item.Price,
			&item.Subtotal,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *orderRepository) filterClause(filter OrderFilter) (string, []any) {
	clause := ""
	args := []any{}

	add := func(condition string, arg any) {
		args = append(args, arg)
		if clause == "" {
			clause = " WHERE "
		} else {
			clause += " AND "
		}
		clause += fmt.Sprintf(condition, len(args))
	}

	if filter.CustomerID != nil {
		add("customer_id = $%d", *filter.CustomerID)
	}
	if filter.SellerID != nil {
		add(`EXISTS (
			SELECT 1 FROM order_items oi
			JOIN products p ON p.id = oi.product_id
			WHERE oi.order_id = orders.id AND p.seller_id = $%d
		)`, *filter.SellerID)
	}
	if filter.WalkerID != nil {
		add(`EXISTS (
			SELECT 1 FROM order_items oi
			JOIN services s ON s.id = oi.service_id
			WHERE oi.order_id = orders.id AND s.walker_id = $%d
		)`, *filter.WalkerID)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}

	return clause, args
}

func (r *orderRepository) Find(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error) {
	clause, args := r.filterClause(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+orderColumns+` FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		clause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	clause, args := r.filterClause(filter)
	query := `SELECT COUNT(*) FROM orders` + clause

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, orderID, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status to %s: %w", orderID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", orderID.String())
	}

	return nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE orders SET payment_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, orderID, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("payment_status", string(status)),
		)
		return fmt.Errorf("update order %s payment status to %s: %w", orderID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", orderID.String())
	}

	return nil
}

func (r *orderRepository) ExistsItemBySeller(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM order_items oi
			JOIN products p ON p.id = oi.product_id
			WHERE oi.order_id = $1 AND p.seller_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, orderID, sellerID).Scan(&exists); err != nil {
		r.log.Error("Failed to check seller order item",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return false, fmt.Errorf("check seller item on order %s: %w", orderID.String(), err)
	}

	return exists, nil
}

func (r *orderRepository) ExistsItemByWalker(ctx context.Context, orderID, walkerID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM order_items oi
			JOIN services s ON s.id = oi.service_id
			WHERE oi.order_id = $1 AND s.walker_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, orderID, walkerID).Scan(&exists); err != nil {
		r.log.Error("Failed to check walker order item",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return false, fmt.Errorf("check walker item on order %s: %w", orderID.String(), err)
	}

	return exists, nil
}
