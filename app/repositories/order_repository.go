package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/pkg/collection"
	"github.com/shashiranjanraj/companyapi/pkg/orm"
)

// OrderRepository stores orders together with their details row.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) q(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// orderRow is one row of orders LEFT JOIN order_details.
type orderRow struct {
	ID         int64
	CustomerID int64
	Date       string
	OrderTotal models.Price
	DetailsID  *int64
	ProductID  *int64
	Quantity   *int
	OrderID    *int64
}

func (row orderRow) view() models.OrderView {
	return models.OrderView{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Date:       row.Date,
		OrderTotal: row.OrderTotal,
		OrderDetails: models.DetailsView{
			ID:        row.DetailsID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			OrderID:   row.OrderID,
		},
	}
}

func (r *OrderRepository) joined(ctx context.Context) *orm.Query {
	return r.q(ctx).
		Model(&models.Order{}).
		Select("orders.id, orders.customer_id, orders.date, orders.order_total, " +
			"order_details.id AS details_id, order_details.product_id, order_details.quantity, " +
			"order_details.order_id").
		Joins("LEFT JOIN order_details ON order_details.order_id = orders.id")
}

// Views returns every order with its details, ordered by id.
func (r *OrderRepository) Views(ctx context.Context) ([]models.OrderView, error) {
	var rows []orderRow
	if err := r.joined(ctx).Order("orders.id").Scan(&rows); err != nil {
		return nil, classify("orders.views", err)
	}
	return collection.Map(rows, orderRow.view), nil
}

// ViewByID returns one order with its details.
func (r *OrderRepository) ViewByID(ctx context.Context, id int64) (models.OrderView, error) {
	var rows []orderRow
	if err := r.joined(ctx).Where("orders.id = ?", id).Scan(&rows); err != nil {
		return models.OrderView{}, classify("orders.view", err)
	}
	if len(rows) == 0 {
		return models.OrderView{}, ErrNotFound
	}
	return rows[0].view(), nil
}

// FindByID loads the order row without its details.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (models.Order, error) {
	var order models.Order
	err := r.q(ctx).Where("id = ?", id).First(&order)
	return order, classify("orders.find", err)
}

// Create inserts the order and its details; the details' order id is set
// from the new order.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return classify("orders.create", r.q(ctx).Create(order))
}

// Update overwrites the order and replaces the fields of its details row.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	err := r.q(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.Omit(clause.Associations).Save(order); err != nil {
			return err
		}
		if order.OrderDetails == nil {
			return nil
		}

		in := order.OrderDetails
		var stored models.OrderDetails
		err := tx.Where("order_id = ?", order.ID).Upsert(&stored, models.OrderDetails{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			OrderID:   order.ID,
		})
		if err != nil {
			return err
		}
		order.OrderDetails = &stored
		return nil
	})
	return classify("orders.update", err)
}

// Delete removes the order and its details.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	err := r.q(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.Delete(&models.OrderDetails{}, "order_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id)
	})
	return classify("orders.delete", err)
}
