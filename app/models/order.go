package models

import "strconv"

type Order struct {
	ID           int64         `gorm:"primaryKey"                                     json:"id"`
	CustomerID   int64         `gorm:"not null;index"                                 json:"customerId"   validate:"required"`
	Date         string        `gorm:"size:10;not null"                               json:"date"         validate:"required,iso_date"`
	OrderTotal   Price         `gorm:"type:decimal(10,2);not null"                    json:"orderTotal"   validate:"price"`
	OrderDetails *OrderDetails `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderDetails" validate:"required,dive"`
}

type OrderDetails struct {
	ID        int64 `gorm:"primaryKey"           json:"id"`
	ProductID int64 `gorm:"not null;index"       json:"productId" validate:"required"`
	Quantity  int   `gorm:"not null"             json:"quantity"  validate:"required,gte=1"`
	OrderID   int64 `gorm:"not null;uniqueIndex" json:"orderId"`
}

// DetailsView is the details half of an order read. Every field is null
// when the order has no details row.
type DetailsView struct {
	ID        *int64 `json:"id"`
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
	OrderID   *int64 `json:"orderId"`
}

// OrderView is an order left-joined with its details.
type OrderView struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customerId"`
	Date         string      `json:"date"`
	OrderTotal   Price       `json:"orderTotal"`
	OrderDetails DetailsView `json:"orderDetails"`
}

// NewOrderView projects o; nil details yield null detail fields.
func NewOrderView(o Order) OrderView {
	v := OrderView{ID: o.ID, CustomerID: o.CustomerID, Date: o.Date, OrderTotal: o.OrderTotal}
	if d := o.OrderDetails; d != nil {
		v.OrderDetails = DetailsView{
			ID:        &d.ID,
			ProductID: &d.ProductID,
			Quantity:  &d.Quantity,
			OrderID:   &d.OrderID,
		}
	}
	return v
}

func (v OrderView) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(v.ID, 10), true
	case "customerId":
		return strconv.FormatInt(v.CustomerID, 10), true
	case "date":
		return v.Date, true
	case "orderTotal":
		return v.OrderTotal.Fixed(), true
	case "productId":
		if v.OrderDetails.ProductID == nil {
			return "", false
		}
		return strconv.FormatInt(*v.OrderDetails.ProductID, 10), true
	case "quantity":
		if v.OrderDetails.Quantity == nil {
			return "", false
		}
		return strconv.Itoa(*v.OrderDetails.Quantity), true
	}
	return "", false
}

func (o Order) Identity() int64 { return o.ID }
