package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/pkg/migration"
)

func init() {
	migration.Register("20240101000000_create_users_table", tables{&models.User{}})
	migration.Register("20240101000001_create_customers_tables", tables{&models.Customer{}, &models.CustomerAddress{}})
	migration.Register("20240101000002_create_products_table", tables{&models.Product{}})
	migration.Register("20240101000003_create_orders_tables", tables{&models.Order{}, &models.OrderDetails{}})
}

// tables creates its models on Up and drops them in reverse on Down.
type tables []interface{}

func (t tables) Up(db *gorm.DB) error {
	return db.AutoMigrate(t...)
}

func (t tables) Down(db *gorm.DB) error {
	for i := len(t) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(t[i]); err != nil {
			return err
		}
	}
	return nil
}
