package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/companyapi/pkg/validate"
)

func TestNormalizeRoles(t *testing.T) {
	cases := map[string]string{
		"EMPLOYEEADMIN": BothRoles,
		"ADMINEMPLOYEE": BothRoles,
		"employeeAdmin": BothRoles,
		"ADMIN":         "[ADMIN]",
		"EMPLOYEE":      "[EMPLOYEE]",
		"JANITOR":       "[JANITOR]",
		"ADMIN,EMP":     "[ADMIN,EMP]",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRoles(in), in)
	}
}

func TestPriceKeepsInputScale(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"price":42.1}`), &p))
	assert.Equal(t, "42.1", p.Price.String())
	assert.Equal(t, "42.10", p.Price.Fixed())

	require.NoError(t, json.Unmarshal([]byte(`{"price":"42.15"}`), &p))
	assert.Equal(t, "42.15", p.Price.String())

	out, err := json.Marshal(Product{Price: MustPrice("12.3")})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":12.30`)
}

func TestProductPriceRule(t *testing.T) {
	p := Product{Sku: "1", Type: "t", Name: "n", Description: "d", Manufacturer: "m", Price: MustPrice("42.15")}
	assert.Empty(t, validate.Struct(p))

	p.Price = MustPrice("42.1")
	assert.Contains(t, validate.Struct(p), "price")

	p.Price = MustPrice("42")
	assert.Contains(t, validate.Struct(p), "price")
}

func TestCustomerValidationDivesIntoAddress(t *testing.T) {
	c := Customer{
		Name:            "Customer1",
		Email:           "x@y.com",
		CustomerAddress: &CustomerAddress{Street: "Street1", City: "City1", State: "CA", ZipCode: "22341"},
	}
	assert.Empty(t, validate.Struct(c))

	c.CustomerAddress.State = "QQ"
	c.CustomerAddress.ZipCode = "1234"
	errs := validate.Struct(c)
	assert.Contains(t, errs, "customerAddress.state")
	assert.Contains(t, errs, "customerAddress.zipCode")

	c.CustomerAddress = nil
	assert.Contains(t, validate.Struct(c), "customerAddress")
}

func TestOrderValidation(t *testing.T) {
	o := Order{
		CustomerID:   1,
		Date:         "1999-04-03",
		OrderTotal:   MustPrice("12.32"),
		OrderDetails: &OrderDetails{ProductID: 5, Quantity: 12},
	}
	assert.Empty(t, validate.Struct(o))

	o.Date = "1999-4-3"
	o.OrderDetails.Quantity = 0
	errs := validate.Struct(o)
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "orderDetails.quantity")
}

func TestUserValidation(t *testing.T) {
	u := User{Name: "David", Title: "Janitor", Roles: "ADMIN", Email: "d@j.com", Password: "password1"}
	assert.Empty(t, validate.Struct(u))

	u.Password = "123pw"
	u.Email = "not-an-email"
	errs := validate.Struct(u)
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "email")
}

func TestCustomerViewWithoutAddress(t *testing.T) {
	v := NewCustomerView(Customer{ID: 3, Name: "Customer3", Email: "d@j.com3"})

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":3,"name":"Customer3","email":"d@j.com3","customerAddress":{"id":null,"street":null,"city":null,"state":null,"zipCode":null}}`,
		string(out))

	_, ok := v.Field("city")
	assert.False(t, ok)
	name, ok := v.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "Customer3", name)
}

func TestOrderViewFields(t *testing.T) {
	v := NewOrderView(Order{
		ID: 1, CustomerID: 2, Date: "1999-04-03", OrderTotal: MustPrice("12.3"),
		OrderDetails: &OrderDetails{ID: 1, ProductID: 5, Quantity: 12, OrderID: 1},
	})

	for field, want := range map[string]string{
		"customerId": "2",
		"orderTotal": "12.30",
		"productId":  "5",
		"quantity":   "12",
		"date":       "1999-04-03",
	} {
		got, ok := v.Field(field)
		assert.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}

	_, ok := NewOrderView(Order{ID: 2}).Field("quantity")
	assert.False(t, ok)
}

func TestStoredCustomerEmailsValidate(t *testing.T) {
	for _, email := range []string{"d@j.com1", "d@j.com2", "d@j.com3"} {
		c := Customer{ID: 1, Name: "Customer1", Email: email, CustomerAddress: &CustomerAddress{
			Street: "Street1", City: "City1", State: "CA", ZipCode: "22341"}}
		assert.Empty(t, validate.Struct(c), email)
	}
}
