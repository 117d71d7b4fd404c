// Package query decides which records a list request returns and whether a
// unique key is already held by another record.
package query

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/pkg/collection"
)

// Record exposes the rendered value of a filterable field. ok is false when
// the record has no value for it, e.g. a customer without an address row.
type Record interface {
	Field(name string) (value string, ok bool)
}

// MatchFunc compares a stored value against a requested one.
type MatchFunc func(stored, want string) bool

// Equal is the default, case-sensitive comparison.
func Equal(stored, want string) bool { return stored == want }

// IntEqual compares both sides as integers, so "01" matches 1. A value that
// is not an integer matches nothing.
func IntEqual(stored, want string) bool {
	a, err := strconv.ParseInt(strings.TrimSpace(stored), 10, 64)
	if err != nil {
		return false
	}
	b, err := strconv.ParseInt(strings.TrimSpace(want), 10, 64)
	return err == nil && a == b
}

// DecimalEqual compares both sides as decimals, so "12.3" matches 12.30.
func DecimalEqual(stored, want string) bool {
	a, err := decimal.NewFromString(strings.TrimSpace(stored))
	if err != nil {
		return false
	}
	b, err := decimal.NewFromString(strings.TrimSpace(want))
	return err == nil && a.Equal(b)
}

// RolesMatch accepts a role filter contained in the stored roles, and also
// any 13-character filter against [EMPLOYEE, ADMIN].
func RolesMatch(stored, want string) bool {
	if strings.Contains(stored, want) {
		return true
	}
	return stored == models.BothRoles && len(want) == 13
}

type condition struct {
	field string
	want  *string
	match MatchFunc
}

// Filter is a conjunction of optional field conditions. A nil value is a
// wildcard.
type Filter struct {
	conds []condition
}

func New() *Filter { return &Filter{} }

// Eq adds an exact-match condition on field.
func (f *Filter) Eq(field string, want *string) *Filter {
	return f.Using(field, want, Equal)
}

// Using adds a condition on field compared with match.
func (f *Filter) Using(field string, want *string, match MatchFunc) *Filter {
	f.conds = append(f.conds, condition{field: field, want: want, match: match})
	return f
}

// Matches reports whether r satisfies every non-nil condition.
func (f *Filter) Matches(r Record) bool {
	for _, c := range f.conds {
		if c.want == nil {
			continue
		}
		got, ok := r.Field(c.field)
		if !ok || !c.match(got, *c.want) {
			return false
		}
	}
	return true
}

// Apply returns the records in rs that match f, preserving order.
func Apply[T Record](f *Filter, rs []T) []T {
	out := collection.Filter(rs, func(r T) bool { return f.Matches(r) })
	if out == nil {
		out = []T{}
	}
	return out
}
