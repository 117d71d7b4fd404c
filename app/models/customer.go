package models

import "strconv"

type Customer struct {
	ID              int64            `gorm:"primaryKey"                                      json:"id"`
	Name            string           `gorm:"size:255;not null"                               json:"name"            validate:"required"`
	Email           string           `gorm:"size:255;not null;uniqueIndex"                   json:"email"           validate:"required,email"`
	CustomerAddress *CustomerAddress `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customerAddress" validate:"required,dive"`
}

type CustomerAddress struct {
	ID         int64  `gorm:"primaryKey"               json:"id"`
	Street     string `gorm:"size:255;not null"        json:"street"     validate:"required"`
	City       string `gorm:"size:255;not null"        json:"city"       validate:"required"`
	State      string `gorm:"size:2;not null"          json:"state"      validate:"required,us_state"`
	ZipCode    string `gorm:"size:10;not null"         json:"zipCode"    validate:"required,zip"`
	CustomerID int64  `gorm:"not null;uniqueIndex"     json:"customerId"`
}

// AddressView is the address half of a customer read. Every field is null
// when the customer has no address row.
type AddressView struct {
	ID      *int64  `json:"id"`
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
}

// CustomerView is a customer left-joined with its address.
type CustomerView struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	CustomerAddress AddressView `json:"customerAddress"`
}

// NewCustomerView projects c; a nil address yields null address fields.
func NewCustomerView(c Customer) CustomerView {
	v := CustomerView{ID: c.ID, Name: c.Name, Email: c.Email}
	if a := c.CustomerAddress; a != nil {
		v.CustomerAddress = AddressView{
			ID:      &a.ID,
			Street:  &a.Street,
			City:    &a.City,
			State:   &a.State,
			ZipCode: &a.ZipCode,
		}
	}
	return v
}

func (v CustomerView) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(v.ID, 10), true
	case "name":
		return v.Name, true
	case "email":
		return v.Email, true
	case "street":
		return deref(v.CustomerAddress.Street)
	case "city":
		return deref(v.CustomerAddress.City)
	case "state":
		return deref(v.CustomerAddress.State)
	case "zipCode":
		return deref(v.CustomerAddress.ZipCode)
	}
	return "", false
}

func (c Customer) Identity() int64 { return c.ID }

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
