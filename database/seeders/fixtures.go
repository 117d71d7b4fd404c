package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/app/models"
)

func init() {
	Register("users", seedUsers)
	Register("customers", seedCustomers)
	Register("products", seedProducts)
	Register("orders", seedOrders)
}

func seedUsers(db *gorm.DB) error {
	users := []models.User{
		{ID: 1, Name: "David", Title: "Janitor", Roles: "[EMPLOYEE, ADMIN]", Email: "d@j.com"},
		{ID: 2, Name: "Amir", Title: "Cleaner", Roles: "[EMPLOYEE]", Email: "A@j.com"},
		{ID: 3, Name: "Hayes", Title: "Boss", Roles: "[EMPLOYEE, ADMIN]", Email: "h@j.com"},
		{ID: 4, Name: "Cody", Title: "HR", Roles: "[ADMIN]", Email: "c@j.com"},
		{ID: 5, Name: "Joe", Title: "Janitor", Roles: "[ADMIN]", Email: "j@j.com"},
	}
	for i := range users {
		users[i].Password = "123pw"
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	return resetSequence(db, "users")
}

func seedCustomers(db *gorm.DB) error {
	customers := []models.Customer{
		{ID: 1, Name: "Customer1", Email: "d@j.com1",
			CustomerAddress: &models.CustomerAddress{ID: 1, Street: "Street1", City: "City1", State: "CA", ZipCode: "22341"}},
		{ID: 2, Name: "Customer2", Email: "d@j.com2",
			CustomerAddress: &models.CustomerAddress{ID: 2, Street: "Street2", City: "City2", State: "CA", ZipCode: "22342"}},
		{ID: 3, Name: "Customer3", Email: "d@j.com3"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}
	if err := resetSequence(db, "customers"); err != nil {
		return err
	}
	return resetSequence(db, "customer_addresses")
}

func seedProducts(db *gorm.DB) error {
	products := make([]models.Product, 0, 9)
	for n := 1; n <= 9; n++ {
		sku := fmt.Sprintf("2345%d", n)
		if n == 9 {
			sku = "29459"
		}
		products = append(products, models.Product{
			ID:           int64(n),
			Sku:          sku,
			Type:         fmt.Sprintf("Hello%d", n),
			Name:         fmt.Sprintf("name%d", n),
			Description:  fmt.Sprintf("descript%d", n),
			Manufacturer: fmt.Sprintf("homedepot%d", n),
			Price:        models.MustPrice(fmt.Sprintf("42.%d5", n)),
		})
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	return resetSequence(db, "products")
}

func seedOrders(db *gorm.DB) error {
	details := []struct {
		productID int64
		quantity  int
	}{{5, 12}, {6, 5}, {2, 22}}

	orders := make([]models.Order, 0, len(details))
	for i, d := range details {
		id := int64(i + 1)
		orders = append(orders, models.Order{
			ID:           id,
			CustomerID:   id,
			Date:         "1999-04-03",
			OrderTotal:   models.MustPrice("12.32"),
			OrderDetails: &models.OrderDetails{ID: id, ProductID: d.productID, Quantity: d.quantity},
		})
	}
	if err := db.Create(&orders).Error; err != nil {
		return err
	}
	if err := resetSequence(db, "orders"); err != nil {
		return err
	}
	return resetSequence(db, "order_details")
}

// resetSequence moves a postgres id sequence past the fixed fixture ids.
// Other drivers derive the next id from the table itself.
func resetSequence(db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.Exec(fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))", table,
	)).Error
}
