package models

import "strconv"

type Product struct {
	ID           int64  `gorm:"primaryKey"                    json:"id"`
	Sku          string `gorm:"size:100;not null;uniqueIndex" json:"sku"          validate:"required"`
	Type         string `gorm:"size:255;not null"             json:"type"         validate:"required"`
	Name         string `gorm:"size:255;not null"             json:"name"         validate:"required"`
	Description  string `gorm:"type:text;not null"            json:"description"  validate:"required"`
	Manufacturer string `gorm:"size:255;not null"             json:"manufacturer" validate:"required"`
	Price        Price  `gorm:"type:decimal(10,2);not null"   json:"price"        validate:"price"`
}

func (p Product) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(p.ID, 10), true
	case "sku":
		return p.Sku, true
	case "type":
		return p.Type, true
	case "name":
		return p.Name, true
	case "description":
		return p.Description, true
	case "manufacturer":
		return p.Manufacturer, true
	case "price":
		return p.Price.Fixed(), true
	}
	return "", false
}

func (p Product) Identity() int64 { return p.ID }
