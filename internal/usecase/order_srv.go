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

	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, actor entity.Actor, req request.CreateOrder) (*response.Order, error)
	GetByID(ctx context.Context, actor entity.Actor, id string) (*response.Order, error)
	List(ctx context.Context, actor entity.Actor, page request.Pagination, status string) (*response.Paginated[response.Order], error)
	UpdateStatus(ctx context.Context, actor entity.Actor, id string, req request.UpdateOrderStatus) (*response.Order, error)
	UpdatePaymentStatus(ctx context.Context, actor entity.Actor, id string, req request.UpdatePaymentStatus) (*response.Order, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Create(ctx context.Context, actor entity.Actor, req request.CreateOrder) (*response.Order, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer profile not found")
	}

	now := time.Now().UTC()
	orderID := utils.GenerateUUID()

	var items []*entity.OrderItem
	var total float64

	for i, line := range req.Items {
		if (line.ProductID == nil) == (line.ServiceID == nil) {
			return nil, fmt.Errorf("item %d must reference exactly one of a product or a service", i)
		}

		item := &entity.OrderItem{
			BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
			OrderID:    orderID,
			Quantity:   line.Quantity,
		}

		switch {
		case line.ProductID != nil:
			productID, err := utils.ParseUUID(*line.ProductID)
			if err != nil {
				return nil, fmt.Errorf("invalid product id")
			}
			product, err := s.repo.Product.FindByID(ctx, productID)
			if err != nil {
				return nil, err
			}
			if product == nil || !product.IsActive {
				return nil, fmt.Errorf("product not found")
			}
			// Advisory check only. The transactional decrement in the
			// repository is what prevents overselling.
			if product.Stock < line.Quantity {
				return nil, repository.ErrInsufficientStock
			}
			item.ProductID = &product.ID
			item.Price = product.Price
		case line.ServiceID != nil:
			serviceID, err := utils.ParseUUID(*line.ServiceID)
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
			if service.Status != entity.ServiceStatusAvailable {
				return nil, fmt.Errorf("service is not available")
			}
			item.ServiceID = &service.ID
			item.Price = service.Price
		}

		item.Subtotal = item.Price * float64(item.Quantity)
		total += item.Subtotal
		items = append(items, item)
	}

	order := &entity.Order{
		Base:          entity.Base{ID: orderID, CreatedAt: now, UpdatedAt: now},
		OrderNumber:   utils.GenerateOrderNumber(),
		CustomerID:    customer.ID,
		TotalAmount:   total,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		Notes:         req.Notes,
	}

	if err := s.repo.Order.Create(ctx, order, items); err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", total),
	)

	out := response.FromOrder(order, items)
	return &out, nil
}

// load fetches an order and checks the actor may see it. Sellers and
// walkers qualify through a line they own.
func (s *orderService) load(ctx context.Context, actor entity.Actor, id string) (*entity.Order, error) {
	orderID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id")
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	switch actor.Role {
	case entity.RoleAdmin:
		return order, nil
	case entity.RoleCustomer:
		customer, err := s.repo.Customer.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if customer != nil && customer.ID == order.CustomerID {
			return order, nil
		}
	case entity.RoleSeller:
		seller, err := s.repo.Seller.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if seller != nil {
			ok, err := s.repo.Order.ExistsItemBySeller(ctx, order.ID, seller.ID)
			if err != nil {
				return nil, err
			}
			if ok {
				return order, nil
			}
		}
	case entity.RoleWalker:
		walker, err := s.repo.Walker.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if walker != nil {
			ok, err := s.repo.Order.ExistsItemByWalker(ctx, order.ID, walker.ID)
			if err != nil {
				return nil, err
			}
			if ok {
				return order, nil
			}
		}
	}

	return nil, fmt.Errorf("access denied")
}

func (s *orderService) GetByID(ctx context.Context, actor entity.Actor, id string) (*response.Order, error) {
	order, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Order.FindItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	out := response.FromOrder(order, items)
	return &out, nil
}

func (s *orderService) List(ctx context.Context, actor entity.Actor, page request.Pagination, status string) (*response.Paginated[response.Order], error) {
	page.Normalize()

	filter := repository.OrderFilter{}
	if status != "" {
		parsed, ok := entity.ParseOrderStatus(status)
		if !ok {
			return nil, fmt.Errorf("invalid status %q", status)
		}
		filter.Status = &parsed
	}

	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleCustomer:
		customer, err := s.repo.Customer.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("customer profile not found")
		}
		filter.CustomerID = &customer.ID
	case entity.RoleSeller:
		seller, err := s.repo.Seller.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, fmt.Errorf("seller profile not found")
		}
		filter.SellerID = &seller.ID
	case entity.RoleWalker:
		walker, err := s.repo.Walker.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if walker == nil {
			return nil, fmt.Errorf("walker profile not found")
		}
		filter.WalkerID = &walker.ID
	}

	orders, err := s.repo.Order.Find(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Order.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := response.NewPaginated(response.FromOrders(orders), page.Page, page.PerPage, total)
	return &out, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, actor entity.Actor, id string, req request.UpdateOrderStatus) (*response.Order, error) {
	order, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	target, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}

	// Customers may only cancel their own pending orders; sellers and
	// walkers involved in the order may mark it completed; admins may
	// do either. load already verified involvement.
	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleCustomer:
		if target != entity.OrderStatusCancelled {
			return nil, fmt.Errorf("access denied")
		}
	case entity.RoleSeller, entity.RoleWalker:
		if target != entity.OrderStatusCompleted {
			return nil, fmt.Errorf("access denied")
		}
	default:
		return nil, fmt.Errorf("access denied")
	}
	if order.Status != entity.OrderStatusPending {
		return nil, fmt.Errorf("cannot transition from %s to %s", order.Status, target)
	}
	if target == entity.OrderStatusPending {
		return nil, fmt.Errorf("cannot transition from %s to %s", order.Status, target)
	}

	if err := s.repo.Order.UpdateStatus(ctx, order.ID, target); err != nil {
		return nil, err
	}
	order.Status = target

	s.log.Info("Order status updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(target)),
	)

	out := response.FromOrder(order, nil)
	return &out, nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, actor entity.Actor, id string, req request.UpdatePaymentStatus) (*response.Order, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("access denied")
	}

	order, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	target, ok := entity.ParsePaymentStatus(req.PaymentStatus)
	if !ok {
		return nil, fmt.Errorf("invalid payment status %q", req.PaymentStatus)
	}

	if err := s.repo.Order.UpdatePaymentStatus(ctx, order.ID, target); err != nil {
		return nil, err
	}
	order.PaymentStatus = target

	out := response.FromOrder(order, nil)
	return &out, nil
}
