package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func testOrder() (*entity.Order, []*entity.OrderItem) {
	now := time.Now().UTC()
	orderID := uuid.New()
	productID := uuid.New()

	order := &entity.Order{
		Base:          entity.Base{ID: orderID, CreatedAt: now, UpdatedAt: now},
		OrderNumber:   "ORD-1-TEST00000",
		CustomerID:    uuid.New(),
		TotalAmount:   20,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	items := []*entity.OrderItem{{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		OrderID:    orderID,
		ProductID:  &productID,
		Quantity:   2,
		Price:      10,
		Subtotal:   20,
	}}

	return order, items
}

func TestOrderCreate(t *testing.T) {
	t.Run("decrements stock conditionally", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		order, items := testOrder()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(order.ID, order.OrderNumber, order.CustomerID, order.TotalAmount,
				order.Status, order.PaymentStatus, order.Notes, order.CreatedAt, order.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE products SET stock = stock - \\$2").
			WithArgs(*items[0].ProductID, items[0].Quantity).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO order_items").
			WithArgs(items[0].ID, items[0].OrderID, items[0].ProductID, items[0].ServiceID,
				items[0].Quantity, items[0].Price, items[0].Subtotal, items[0].CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := NewOrderRepository(mock, zap.NewNop())
		if err := repo.Create(context.Background(), order, items); err != nil {
			t.Fatalf("Create: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("zero affected rows aborts the order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		order, items := testOrder()

		// The guarded update touches no row when stock ran out between
		// validation and commit; the whole transaction must roll back.
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(order.ID, order.OrderNumber, order.CustomerID, order.TotalAmount,
				order.Status, order.PaymentStatus, order.Notes, order.CreatedAt, order.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE products SET stock = stock - \\$2").
			WithArgs(*items[0].ProductID, items[0].Quantity).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		repo := NewOrderRepository(mock, zap.NewNop())
		if err := repo.Create(context.Background(), order, items); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}
