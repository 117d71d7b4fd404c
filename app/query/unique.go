package query

import "github.com/shashiranjanraj/companyapi/pkg/collection"

// Identified is a record with a store-assigned id. Zero means not yet stored.
type Identified interface {
	Identity() int64
}

// IsTaken reports whether some record in existing has the same key as
// candidate and a different id.
func IsTaken[T Identified](existing []T, candidate T, key func(T) string) bool {
	want := key(candidate)
	return collection.Contains(existing, func(e T) bool {
		return key(e) == want && e.Identity() != candidate.Identity()
	})
}
