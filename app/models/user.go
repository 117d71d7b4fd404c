package models

import (
	"strconv"
	"strings"
)

// BothRoles is the stored form for a user holding both roles.
const BothRoles = "[EMPLOYEE, ADMIN]"

type User struct {
	ID       int64  `gorm:"primaryKey"                    json:"id"`
	Name     string `gorm:"size:255;not null"             json:"name"     validate:"required"`
	Title    string `gorm:"size:255;not null"             json:"title"    validate:"required"`
	Roles    string `gorm:"size:255;not null"             json:"roles"    validate:"required,roles"`
	Email    string `gorm:"size:255;not null;uniqueIndex" json:"email"    validate:"required,email"`
	Password string `gorm:"size:255;not null"             json:"password" validate:"required,min=8"`
}

// NormalizeRoles turns raw role text into its display form. EMPLOYEEADMIN
// and ADMINEMPLOYEE (any case) become [EMPLOYEE, ADMIN]; anything else is
// bracketed as given.
func NormalizeRoles(raw string) string {
	switch strings.ToUpper(raw) {
	case "EMPLOYEEADMIN", "ADMINEMPLOYEE":
		return BothRoles
	}
	return "[" + raw + "]"
}

// Field returns the value of a filterable column.
func (u User) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(u.ID, 10), true
	case "name":
		return u.Name, true
	case "title":
		return u.Title, true
	case "roles":
		return u.Roles, true
	case "email":
		return u.Email, true
	case "password":
		return u.Password, true
	}
	return "", false
}

func (u User) Identity() int64 { return u.ID }
