package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/pkg/collection"
	"github.com/shashiranjanraj/companyapi/pkg/orm"
)

// CustomerRepository stores customers together with their address row.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) q(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// customerRow is one row of customers LEFT JOIN customer_addresses.
type customerRow struct {
	ID        int64
	Name      string
	Email     string
	AddressID *int64
	Street    *string
	City      *string
	State     *string
	ZipCode   *string
}

func (row customerRow) view() models.CustomerView {
	return models.CustomerView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		CustomerAddress: models.AddressView{
			ID:      row.AddressID,
			Street:  row.Street,
			City:    row.City,
			State:   row.State,
			ZipCode: row.ZipCode,
		},
	}
}

func (r *CustomerRepository) joined(ctx context.Context) *orm.Query {
	return r.q(ctx).
		Model(&models.Customer{}).
		Select("customers.id, customers.name, customers.email, " +
			"customer_addresses.id AS address_id, customer_addresses.street, customer_addresses.city, " +
			"customer_addresses.state, customer_addresses.zip_code").
		Joins("LEFT JOIN customer_addresses ON customer_addresses.customer_id = customers.id")
}

// Views returns every customer with its address, ordered by id.
func (r *CustomerRepository) Views(ctx context.Context) ([]models.CustomerView, error) {
	var rows []customerRow
	if err := r.joined(ctx).Order("customers.id").Scan(&rows); err != nil {
		return nil, classify("customers.views", err)
	}
	return collection.Map(rows, customerRow.view), nil
}

// ViewByID returns one customer with its address.
func (r *CustomerRepository) ViewByID(ctx context.Context, id int64) (models.CustomerView, error) {
	var rows []customerRow
	if err := r.joined(ctx).Where("customers.id = ?", id).Scan(&rows); err != nil {
		return models.CustomerView{}, classify("customers.view", err)
	}
	if len(rows) == 0 {
		return models.CustomerView{}, ErrNotFound
	}
	return rows[0].view(), nil
}

// FindByID loads the customer row without its address.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (models.Customer, error) {
	var customer models.Customer
	err := r.q(ctx).Where("id = ?", id).First(&customer)
	return customer, classify("customers.find", err)
}

func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.q(ctx).Model(&models.Customer{}).Where("id = ?", id).Exists()
	return ok, classify("customers.exists", err)
}

// WithEmail returns the customers holding email.
func (r *CustomerRepository) WithEmail(ctx context.Context, email string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.q(ctx).Where("email = ?", email).Get(&customers)
	return customers, classify("customers.with_email", err)
}

// Create inserts the customer and its address in one statement group.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return classify("customers.create", r.q(ctx).Create(customer))
}

// Update overwrites the customer and replaces the fields of its address,
// creating the address row when it is missing.
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	err := r.q(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.Omit(clause.Associations).Save(customer); err != nil {
			return err
		}
		if customer.CustomerAddress == nil {
			return nil
		}

		in := customer.CustomerAddress
		var stored models.CustomerAddress
		err := tx.Where("customer_id = ?", customer.ID).Upsert(&stored, models.CustomerAddress{
			Street:     in.Street,
			City:       in.City,
			State:      in.State,
			ZipCode:    in.ZipCode,
			CustomerID: customer.ID,
		})
		if err != nil {
			return err
		}
		customer.CustomerAddress = &stored
		return nil
	})
	return classify("customers.update", err)
}

// Delete removes the customer and its address.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	err := r.q(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.Delete(&models.CustomerAddress{}, "customer_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, id)
	})
	return classify("customers.delete", err)
}
