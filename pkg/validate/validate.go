// Package validate checks request payloads against `validate` struct tags.
//
// Rules are comma-separated and run in order; the first failing rule of a
// field is reported.
//
//	required     field must not be zero/empty
//	nullable     if empty, skip the remaining rules of the field
//	dive         validate the fields of a nested struct (or non-nil pointer)
//	email        local@domain.tld address
//	us_state     two-letter USPS state code
//	zip          US ZIP code, NNNNN or NNNNN-NNNN
//	price        rendered value has exactly two fractional digits
//	iso_date     calendar date as YYYY-MM-DD
//	roles        non-empty role text (normalized later by the model)
//	min=N        string: min char length | number: min value
//	max=N        string: max char length | number: max value
//	gte=N        number >= N
//	lte=N        number <= N
//	in=a|b|c     value must be one of the listed items
//
// Example:
//
//	type Address struct {
//	    State   string `json:"state"   validate:"required,us_state"`
//	    ZipCode string `json:"zipCode" validate:"required,zip"`
//	}
//	type Customer struct {
//	    Email   string   `json:"email"           validate:"required,email"`
//	    Address *Address `json:"customerAddress" validate:"required,dive"`
//	}
//
// Errors are keyed by the field's JSON name; nested fields use their dotted
// path, e.g. "customerAddress.zipCode".
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// rule returns a message when the value fails, "" otherwise.
type rule func(field, param, raw string, v reflect.Value) string

var rules = map[string]rule{
	"required": func(field, _, _ string, v reflect.Value) string {
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return ""
	},
	"email":    pattern(emailRE, "The %s must be a valid email address."),
	"us_state": pattern(usStateRE, "The %s must be a two-letter US state code."),
	"zip":      pattern(zipRE, "The %s must be a 5 or 9 digit ZIP code."),
	"price":    pattern(priceRE, "The %s must have exactly two decimal places."),
	"iso_date": pattern(isoDateRE, "The %s must be a date formatted as YYYY-MM-DD."),
	"roles": func(field, _, raw string, _ reflect.Value) string {
		if strings.TrimSpace(raw) == "" {
			return fmt.Sprintf("The %s field must name at least one role.", field)
		}
		return ""
	},
	"min": func(field, param, raw string, v reflect.Value) string {
		n := parseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(len([]rune(raw))) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		return ""
	},
	"max": func(field, param, raw string, v reflect.Value) string {
		n := parseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(len([]rune(raw))) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
		return ""
	},
	"gte": func(field, param, _ string, v reflect.Value) string {
		if toFloat(v) < parseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
		return ""
	},
	"lte": func(field, param, _ string, v reflect.Value) string {
		if toFloat(v) > parseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
		return ""
	},
	"in": func(field, param, raw string, _ reflect.Value) string {
		for _, allowed := range strings.Split(param, "|") {
			if raw == strings.TrimSpace(allowed) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	},
}

var (
	emailRE   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usStateRE = regexp.MustCompile(`^(A[LKSZRAEP]|C[AOT]|D[EC]|F[LM]|G[AU]|HI|I[ADLN]|K[SY]|LA|M[ADEHINOPST]|N[CDEHJMVY]|O[HKR]|P[ARW]|RI|S[CD]|T[NX]|UT|V[AIT]|W[AIVY])$`)
	zipRE     = regexp.MustCompile(`^[0-9]{5}$|^[0-9]{5}-[0-9]{4}$`)
	priceRE   = regexp.MustCompile(`\.[0-9]{2}$`)
	isoDateRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`)
)

func pattern(re *regexp.Regexp, msg string) rule {
	return func(field, _, raw string, _ reflect.Value) string {
		if !re.MatchString(raw) {
			return fmt.Sprintf(msg, field)
		}
		return ""
	}
}

// Struct validates every tagged field of v, which must be a struct or a
// pointer to one. The result maps field path to message and is empty when
// v is valid.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	walk(rv, "", errs)
	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func walk(rv reflect.Value, prefix string, errs map[string]string) {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		value := rv.Field(i)
		name := prefix + jsonFieldName(field)
		names := strings.Split(tag, ",")

		if hasRule(names, "nullable") && isEmpty(value) {
			continue
		}

		if msg := check(names, name, value); msg != "" {
			errs[name] = msg
			continue
		}

		if hasRule(names, "dive") {
			nested := value
			if nested.Kind() == reflect.Ptr {
				if nested.IsNil() {
					continue
				}
				nested = nested.Elem()
			}
			if nested.Kind() == reflect.Struct {
				walk(nested, name+".", errs)
			}
		}
	}
}

// check runs names against one value and returns the first failure.
func check(names []string, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	for _, n := range names {
		key, param, _ := strings.Cut(strings.TrimSpace(n), "=")
		fn, ok := rules[key]
		if !ok {
			continue
		}
		if msg := fn(field, param, raw, v); msg != "" {
			return msg
		}
	}
	return ""
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return parseFloat(fmt.Sprintf("%v", v.Interface()))
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}

func hasRule(names []string, target string) bool {
	for _, n := range names {
		if strings.TrimSpace(n) == target {
			return true
		}
	}
	return false
}
