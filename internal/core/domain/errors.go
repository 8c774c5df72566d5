package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent query-engine failures. Absence of a category,
// subcategory, item, or record is structural (empty slice or nil record),
// never an error.
var (
	// ErrStoreUnavailable indicates the catalog store could not be reached
	// or failed a query. The engine surfaces it immediately without retrying.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)

// ParseError reports a numeric string in a nutrition record that could not
// be parsed. It is scoped to one field of one record and never aborts the
// surrounding query.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
