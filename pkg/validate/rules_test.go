package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/companyapi/pkg/validate"
)

func TestEmailShape(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	for _, ok := range []string{"x@y.com", "first.last+tag@example.org", "a_b!#@c.io", "d@j.com1", "x@sub.y.com"} {
		assert.Empty(t, validate.Struct(in{Email: ok}), ok)
	}
	for _, bad := range []string{"h22j.com", "x@y", "@y.com", "x@y.", "a b@y.com", "x@@y.com"} {
		assert.Contains(t, validate.Struct(in{Email: bad}), "email", bad)
	}
}

func TestUSState(t *testing.T) {
	type in struct {
		State string `json:"state" validate:"required,us_state"`
	}
	for _, ok := range []string{"CA", "NY", "TX", "DC", "WY", "PR"} {
		assert.Empty(t, validate.Struct(in{State: ok}), ok)
	}
	for _, bad := range []string{"ca", "XX", "CAL", "C"} {
		assert.Contains(t, validate.Struct(in{State: bad}), "state", bad)
	}
}

func TestZip(t *testing.T) {
	type in struct {
		ZipCode string `json:"zipCode" validate:"required,zip"`
	}
	for _, ok := range []string{"22341", "22341-1234"} {
		assert.Empty(t, validate.Struct(in{ZipCode: ok}), ok)
	}
	for _, bad := range []string{"2234", "223411", "22341-12", "22341 1234", "abcde"} {
		assert.Contains(t, validate.Struct(in{ZipCode: bad}), "zipCode", bad)
	}
}

type money string

func (m money) String() string { return string(m) }

func TestPrice(t *testing.T) {
	type in struct {
		Price money `json:"price" validate:"required,price"`
	}
	for _, ok := range []string{"42.15", "0.10", "100.00"} {
		assert.Empty(t, validate.Struct(in{Price: money(ok)}), ok)
	}
	for _, bad := range []string{"42", "42.1", "42.155"} {
		assert.Contains(t, validate.Struct(in{Price: money(bad)}), "price", bad)
	}
}

func TestISODate(t *testing.T) {
	type in struct {
		Date string `json:"date" validate:"required,iso_date"`
	}
	assert.Empty(t, validate.Struct(in{Date: "1999-04-03"}))
	for _, bad := range []string{"1999-13-03", "1999-04-32", "04/03/1999", "1999-4-3"} {
		assert.Contains(t, validate.Struct(in{Date: bad}), "date", bad)
	}
}

func TestRoles(t *testing.T) {
	type in struct {
		Roles string `json:"roles" validate:"roles"`
	}
	assert.Empty(t, validate.Struct(in{Roles: "EMPLOYEEADMIN"}))
	assert.Contains(t, validate.Struct(in{Roles: "   "}), "roles")
}

func TestQuantityPositive(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,gte=1"`
	}
	assert.Empty(t, validate.Struct(in{Quantity: 3}))
	assert.Contains(t, validate.Struct(in{Quantity: 0}), "quantity")
	assert.Contains(t, validate.Struct(in{Quantity: -2}), "quantity")
}

func TestPasswordMinLength(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=8"`
	}
	assert.Empty(t, validate.Struct(in{Password: "12345678"}))
	assert.Contains(t, validate.Struct(in{Password: "123pw"}), "password")
}

type address struct {
	State   string `json:"state"   validate:"required,us_state"`
	ZipCode string `json:"zipCode" validate:"required,zip"`
}

type customer struct {
	Name    string   `json:"name"            validate:"required"`
	Address *address `json:"customerAddress" validate:"required,dive"`
}

func TestDiveReportsNestedPath(t *testing.T) {
	errs := validate.Struct(customer{Name: "c", Address: &address{State: "ZZ", ZipCode: "22341"}})
	assert.Contains(t, errs, "customerAddress.state")
	assert.NotContains(t, errs, "customerAddress.zipCode")
}

func TestDiveRequiredNilPointer(t *testing.T) {
	errs := validate.Struct(customer{Name: "c"})
	assert.Contains(t, errs, "customerAddress")
	assert.Len(t, errs, 1)
}

func TestDiveValid(t *testing.T) {
	errs := validate.Struct(&customer{Name: "c", Address: &address{State: "CA", ZipCode: "22341-0001"}})
	assert.False(t, validate.HasErrors(errs), errs)
}
