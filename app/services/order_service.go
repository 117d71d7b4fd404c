package services

import (
	"context"

	"github.com/shashiranjanraj/companyapi/app/apperrors"
	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/query"
)

const orderEntity = "order"

type OrderStore interface {
	Views(ctx context.Context) ([]models.OrderView, error)
	ViewByID(ctx context.Context, id int64) (models.OrderView, error)
	FindByID(ctx context.Context, id int64) (models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id int64) error
}

// Existence answers whether a referenced row is stored.
type Existence interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type OrderFilter struct {
	CustomerID, Date, OrderTotal, ProductID, Quantity *string
}

type OrderService struct {
	orders    OrderStore
	customers Existence
	products  Existence
}

func NewOrderService(orders OrderStore, customers, products Existence) *OrderService {
	return &OrderService{orders: orders, customers: customers, products: products}
}

func (s *OrderService) List(ctx context.Context, f OrderFilter) (out []models.OrderView, err error) {
	defer func() { track(orderEntity, "list", err) }()

	all, err := s.orders.Views(ctx)
	if err != nil {
		return nil, fault(ctx, orderEntity, "list", err)
	}

	filter := query.New().
		Using("customerId", f.CustomerID, query.IntEqual).
		Eq("date", f.Date).
		Using("orderTotal", f.OrderTotal, query.DecimalEqual).
		Using("productId", f.ProductID, query.IntEqual).
		Using("quantity", f.Quantity, query.IntEqual)
	return query.Apply(filter, all), nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (view models.OrderView, err error) {
	defer func() { track(orderEntity, "get", err) }()

	view, err = s.orders.ViewByID(ctx, id)
	if err != nil {
		return models.OrderView{}, lookup(ctx, orderEntity, "get", id, err)
	}
	return view, nil
}

// Create stores an order and its details once the customer and product it
// refers to are known to exist.
func (s *OrderService) Create(ctx context.Context, order models.Order) (_ models.Order, err error) {
	defer func() { track(orderEntity, "create", err) }()

	order.ID = 0
	if err := s.checkReferences(ctx, "create", order); err != nil {
		return models.Order{}, err
	}

	details := *order.OrderDetails
	details.ID, details.OrderID = 0, 0
	order.OrderDetails = &details

	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, fault(ctx, orderEntity, "create", err)
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id int64, order models.Order) (_ models.Order, err error) {
	defer func() { track(orderEntity, "update", err) }()

	if order.ID != id {
		return models.Order{}, apperrors.BadRequest("path id %d does not match body id %d", id, order.ID)
	}
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return models.Order{}, lookup(ctx, orderEntity, "update", id, err)
	}
	if err := s.checkReferences(ctx, "update", order); err != nil {
		return models.Order{}, err
	}

	details := *order.OrderDetails
	details.OrderID = id
	order.OrderDetails = &details

	if err := s.orders.Update(ctx, &order); err != nil {
		return models.Order{}, fault(ctx, orderEntity, "update", err)
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { track(orderEntity, "delete", err) }()

	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return lookup(ctx, orderEntity, "delete", id, err)
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return fault(ctx, orderEntity, "delete", err)
	}
	return nil
}

func (s *OrderService) checkReferences(ctx context.Context, op string, order models.Order) error {
	if order.OrderDetails == nil {
		return apperrors.BadRequest("order details are required")
	}

	ok, err := s.customers.Exists(ctx, order.CustomerID)
	if err != nil {
		return fault(ctx, orderEntity, op, err)
	}
	if !ok {
		return apperrors.BadRequest("customer %d does not exist", order.CustomerID)
	}

	ok, err = s.products.Exists(ctx, order.OrderDetails.ProductID)
	if err != nil {
		return fault(ctx, orderEntity, op, err)
	}
	if !ok {
		return apperrors.BadRequest("product %d does not exist", order.OrderDetails.ProductID)
	}
	return nil
}
