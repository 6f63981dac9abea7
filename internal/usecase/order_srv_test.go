package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"petconnect/internal/data/entity"
	"petconnect/internal/data/repository"
	"petconnect/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderFixture struct {
	customerUserID uuid.UUID
	customerID     uuid.UUID
	sellerUserID   uuid.UUID
	sellerID       uuid.UUID
	productID      uuid.UUID
	serviceID      uuid.UUID

	products *stubProductRepo
	services *stubServiceRepo
	orders   *stubOrderRepo

	service OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		customerUserID: uuid.New(),
		customerID:     uuid.New(),
		sellerUserID:   uuid.New(),
		sellerID:       uuid.New(),
		productID:      uuid.New(),
		serviceID:      uuid.New(),
	}

	customers := &stubCustomerRepo{
		FindByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
			if userID == f.customerUserID {
				return &entity.Customer{Base: entity.Base{ID: f.customerID}, UserID: userID}, nil
			}
			return nil, nil
		},
	}
	f.products = &stubProductRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
			if id == f.productID {
				return &entity.Product{
					Base:     entity.Base{ID: id},
					Name:     "Chew toy",
					Price:    10,
					Stock:    5,
					IsActive: true,
				}, nil
			}
			return nil, nil
		},
	}
	f.services = &stubServiceRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			if id == f.serviceID {
				return &entity.Service{
					Base:     entity.Base{ID: id},
					Name:     "Evening walk",
					Price:    30,
					Status:   entity.ServiceStatusAvailable,
					IsActive: true,
				}, nil
			}
			return nil, nil
		},
	}
	f.orders = &stubOrderRepo{}

	sellers := &stubSellerRepo{
		FindByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
			if userID == f.sellerUserID {
				return &entity.Seller{Base: entity.Base{ID: f.sellerID}, UserID: userID, IsApproved: true}, nil
			}
			return nil, nil
		},
	}

	repo := &repository.Repository{
		Customer: customers,
		Seller:   sellers,
		Product:  f.products,
		Service:  f.services,
		Order:    f.orders,
	}
	f.service = NewOrderService(repo, zap.NewNop())

	return f
}

func (f *orderFixture) customer() entity.Actor {
	return entity.Actor{UserID: f.customerUserID, Role: entity.RoleCustomer}
}

func TestCreateOrder(t *testing.T) {
	t.Run("mixed product and service lines", func(t *testing.T) {
		f := newOrderFixture()

		var created *entity.Order
		var createdItems []*entity.OrderItem
		f.orders.CreateFn = func(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
			created = order
			createdItems = items
			return nil
		}

		productID := f.productID.String()
		serviceID := f.serviceID.String()
		got, err := f.service.Create(context.Background(), f.customer(), request.CreateOrder{
			Items: []request.OrderItem{
				{ProductID: &productID, Quantity: 3},
				{ServiceID: &serviceID, Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created == nil {
			t.Fatal("order repository was never called")
		}
		if created.TotalAmount != 3*10+30 {
			t.Errorf("total = %v, want 60", created.TotalAmount)
		}
		if created.Status != entity.OrderStatusPending {
			t.Errorf("status = %s, want PENDING", created.Status)
		}
		if created.PaymentStatus != entity.PaymentStatusPending {
			t.Errorf("payment status = %s, want PENDING", created.PaymentStatus)
		}
		if !strings.HasPrefix(created.OrderNumber, "ORD-") {
			t.Errorf("order number %q missing ORD- prefix", created.OrderNumber)
		}
		if len(createdItems) != 2 {
			t.Fatalf("items = %d, want 2", len(createdItems))
		}
		if createdItems[0].Subtotal != 30 || createdItems[1].Subtotal != 30 {
			t.Errorf("subtotals = %v, %v", createdItems[0].Subtotal, createdItems[1].Subtotal)
		}
		if got.TotalAmount != 60 {
			t.Errorf("response total = %v", got.TotalAmount)
		}
	})

	t.Run("insufficient stock pre-check", func(t *testing.T) {
		f := newOrderFixture()

		productID := f.productID.String()
		_, err := f.service.Create(context.Background(), f.customer(), request.CreateOrder{
			Items: []request.OrderItem{{ProductID: &productID, Quantity: 6}},
		})
		if !errors.Is(err, repository.ErrInsufficientStock) {
			t.Errorf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("stock race surfaces from the repository", func(t *testing.T) {
		f := newOrderFixture()
		f.orders.CreateFn = func(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
			return repository.ErrInsufficientStock
		}

		productID := f.productID.String()
		_, err := f.service.Create(context.Background(), f.customer(), request.CreateOrder{
			Items: []request.OrderItem{{ProductID: &productID, Quantity: 2}},
		})
		if !errors.Is(err, repository.ErrInsufficientStock) {
			t.Errorf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("line with both references rejected", func(t *testing.T) {
		f := newOrderFixture()

		productID := f.productID.String()
		serviceID := f.serviceID.String()
		_, err := f.service.Create(context.Background(), f.customer(), request.CreateOrder{
			Items: []request.OrderItem{{ProductID: &productID, ServiceID: &serviceID, Quantity: 1}},
		})
		if err == nil {
			t.Fatal("expected error for a line referencing both a product and a service")
		}
	})

	t.Run("line with no reference rejected", func(t *testing.T) {
		f := newOrderFixture()

		_, err := f.service.Create(context.Background(), f.customer(), request.CreateOrder{
			Items: []request.OrderItem{{Quantity: 1}},
		})
		if err == nil {
			t.Fatal("expected error for an empty line")
		}
	})

	t.Run("inactive product rejected", func(t *testing.T) {
		f := newOrderFixture()
		f.products.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
			return &entity.Product{Base: entity.Base{ID: id}, IsActive: false}, nil
		}

		productID := f.productID.String()
		_, err := f.service.Create(context.Background(), f.customer(), request.CreateOrder{
			Items: []request.OrderItem{{ProductID: &productID, Quantity: 1}},
		})
		if err == nil || err.Error() != "product not found" {
			t.Errorf("expected product not found, got %v", err)
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	setOrder := func(f *orderFixture, status entity.OrderStatus) uuid.UUID {
		id := uuid.New()
		f.orders.FindByIDFn = func(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
			if orderID == id {
				return &entity.Order{
					Base:          entity.Base{ID: id},
					OrderNumber:   "ORD-1-TEST00000",
					CustomerID:    f.customerID,
					Status:        status,
					PaymentStatus: entity.PaymentStatusPending,
				}, nil
			}
			return nil, nil
		}
		return id
	}

	t.Run("customer cancels pending order", func(t *testing.T) {
		f := newOrderFixture()
		id := setOrder(f, entity.OrderStatusPending)

		got, err := f.service.UpdateStatus(context.Background(), f.customer(), id.String(), request.UpdateOrderStatus{Status: "CANCELLED"})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.Status != "CANCELLED" {
			t.Errorf("status = %s", got.Status)
		}
	})

	t.Run("customer cannot complete an order", func(t *testing.T) {
		f := newOrderFixture()
		id := setOrder(f, entity.OrderStatusPending)

		_, err := f.service.UpdateStatus(context.Background(), f.customer(), id.String(), request.UpdateOrderStatus{Status: "COMPLETED"})
		if err == nil || err.Error() != "access denied" {
			t.Errorf("expected access denied, got %v", err)
		}
	})

	t.Run("admin completes pending order", func(t *testing.T) {
		f := newOrderFixture()
		id := setOrder(f, entity.OrderStatusPending)
		admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

		got, err := f.service.UpdateStatus(context.Background(), admin, id.String(), request.UpdateOrderStatus{Status: "COMPLETED"})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.Status != "COMPLETED" {
			t.Errorf("status = %s", got.Status)
		}
	})

	t.Run("involved seller completes pending order", func(t *testing.T) {
		f := newOrderFixture()
		id := setOrder(f, entity.OrderStatusPending)
		f.orders.ExistsItemBySellerFn = func(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error) {
			return orderID == id && sellerID == f.sellerID, nil
		}
		seller := entity.Actor{UserID: f.sellerUserID, Role: entity.RoleSeller}

		got, err := f.service.UpdateStatus(context.Background(), seller, id.String(), request.UpdateOrderStatus{Status: "COMPLETED"})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.Status != "COMPLETED" {
			t.Errorf("status = %s", got.Status)
		}
	})

	t.Run("uninvolved seller is denied", func(t *testing.T) {
		f := newOrderFixture()
		id := setOrder(f, entity.OrderStatusPending)
		seller := entity.Actor{UserID: f.sellerUserID, Role: entity.RoleSeller}

		_, err := f.service.UpdateStatus(context.Background(), seller, id.String(), request.UpdateOrderStatus{Status: "COMPLETED"})
		if err == nil || err.Error() != "access denied" {
			t.Errorf("expected access denied, got %v", err)
		}
	})

	t.Run("cancelled order is frozen", func(t *testing.T) {
		f := newOrderFixture()
		id := setOrder(f, entity.OrderStatusCancelled)
		admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

		_, err := f.service.UpdateStatus(context.Background(), admin, id.String(), request.UpdateOrderStatus{Status: "COMPLETED"})
		if err == nil {
			t.Fatal("expected transition out of CANCELLED to fail")
		}
	})
}
