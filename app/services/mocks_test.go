package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/companyapi/app/models"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) All(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUsers) FindByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) WithEmail(ctx context.Context, email string) ([]models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUsers) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 6
	}
	return args.Error(0)
}

func (m *mockUsers) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockProducts struct{ mock.Mock }

func (m *mockProducts) All(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProducts) FindByID(ctx context.Context, id int64) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockProducts) WithSku(ctx context.Context, sku string) ([]models.Product, error) {
	args := m.Called(ctx, sku)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProducts) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProducts) Update(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProducts) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) Views(ctx context.Context) ([]models.CustomerView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CustomerView), args.Error(1)
}

func (m *mockCustomers) ViewByID(ctx context.Context, id int64) (models.CustomerView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CustomerView), args.Error(1)
}

func (m *mockCustomers) FindByID(ctx context.Context, id int64) (models.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *mockCustomers) WithEmail(ctx context.Context, email string) ([]models.Customer, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *mockCustomers) Create(ctx context.Context, c *models.Customer) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 4
		if c.CustomerAddress != nil {
			c.CustomerAddress.ID = 3
			c.CustomerAddress.CustomerID = 4
		}
	}
	return args.Error(0)
}

func (m *mockCustomers) Update(ctx context.Context, c *models.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCustomers) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) Views(ctx context.Context) ([]models.OrderView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.OrderView), args.Error(1)
}

func (m *mockOrders) ViewByID(ctx context.Context, id int64) (models.OrderView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.OrderView), args.Error(1)
}

func (m *mockOrders) FindByID(ctx context.Context, id int64) (models.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrders) Create(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrders) Update(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrders) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockExistence struct{ mock.Mock }

func (m *mockExistence) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
