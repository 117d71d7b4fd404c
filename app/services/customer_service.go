package services

import (
	"context"

	"github.com/shashiranjanraj/companyapi/app/apperrors"
	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/query"
)

const customerEntity = "customer"

type CustomerStore interface {
	Views(ctx context.Context) ([]models.CustomerView, error)
	ViewByID(ctx context.Context, id int64) (models.CustomerView, error)
	FindByID(ctx context.Context, id int64) (models.Customer, error)
	WithEmail(ctx context.Context, email string) ([]models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id int64) error
}

type CustomerFilter struct {
	Name, Email, Street, City, State, ZipCode *string
}

type CustomerService struct {
	customers CustomerStore
}

func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

func customerEmail(c models.Customer) string { return c.Email }

func (s *CustomerService) List(ctx context.Context, f CustomerFilter) (out []models.CustomerView, err error) {
	defer func() { track(customerEntity, "list", err) }()

	all, err := s.customers.Views(ctx)
	if err != nil {
		return nil, fault(ctx, customerEntity, "list", err)
	}

	filter := query.New().
		Eq("name", f.Name).
		Eq("email", f.Email).
		Eq("street", f.Street).
		Eq("city", f.City).
		Eq("state", f.State).
		Eq("zipCode", f.ZipCode)
	return query.Apply(filter, all), nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (view models.CustomerView, err error) {
	defer func() { track(customerEntity, "get", err) }()

	view, err = s.customers.ViewByID(ctx, id)
	if err != nil {
		return models.CustomerView{}, lookup(ctx, customerEntity, "get", id, err)
	}
	return view, nil
}

// Create stores a customer and its address together.
func (s *CustomerService) Create(ctx context.Context, customer models.Customer) (_ models.Customer, err error) {
	defer func() { track(customerEntity, "create", err) }()

	customer.ID = 0
	if a := customer.CustomerAddress; a != nil {
		addr := *a
		addr.ID, addr.CustomerID = 0, 0
		customer.CustomerAddress = &addr
	}

	if err := s.checkEmail(ctx, "create", customer); err != nil {
		return models.Customer{}, err
	}
	if err := s.customers.Create(ctx, &customer); err != nil {
		return models.Customer{}, fault(ctx, customerEntity, "create", err)
	}
	return customer, nil
}

// Update overwrites customer id and its address. A body id that differs
// from the path id is a conflict for customers.
func (s *CustomerService) Update(ctx context.Context, id int64, customer models.Customer) (_ models.Customer, err error) {
	defer func() { track(customerEntity, "update", err) }()

	if customer.ID != id {
		return models.Customer{}, apperrors.Conflict("path id %d does not match body id %d", id, customer.ID)
	}
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return models.Customer{}, lookup(ctx, customerEntity, "update", id, err)
	}
	if err := s.checkEmail(ctx, "update", customer); err != nil {
		return models.Customer{}, err
	}

	if a := customer.CustomerAddress; a != nil {
		addr := *a
		addr.CustomerID = id
		customer.CustomerAddress = &addr
	}
	if err := s.customers.Update(ctx, &customer); err != nil {
		return models.Customer{}, fault(ctx, customerEntity, "update", err)
	}
	return customer, nil
}

// Delete removes the customer and its address.
func (s *CustomerService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { track(customerEntity, "delete", err) }()

	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return lookup(ctx, customerEntity, "delete", id, err)
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return fault(ctx, customerEntity, "delete", err)
	}
	return nil
}

func (s *CustomerService) checkEmail(ctx context.Context, op string, customer models.Customer) error {
	holders, err := s.customers.WithEmail(ctx, customer.Email)
	if err != nil {
		return fault(ctx, customerEntity, op, err)
	}
	if query.IsTaken(holders, customer, customerEmail) {
		return apperrors.Conflict("email %q is already taken", customer.Email)
	}
	return nil
}
