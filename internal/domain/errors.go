package domain

import (
	"fmt"
	"strings"
)

// NotFoundError reports a query for an entity the dataset does not contain.
// Recoverable: the caller decides how to surface it (the HTTP adapter maps
// it to a 404).
type NotFoundError struct {
	Entity string // "election", "county", "region"
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// IntegrityError reports load-time dataset violations. Fatal: the service
// refuses to start on a partial or inconsistent dataset. It accumulates
// every problem found so a broken data file is fixed in one pass.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "dataset integrity check failed"
	case 1:
		return "dataset integrity: " + e.Problems[0]
	default:
		return fmt.Sprintf("dataset integrity: %d problems: %s",
			len(e.Problems), strings.Join(e.Problems, "; "))
	}
}

// Addf records one integrity problem.
func (e *IntegrityError) Addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// OrNil returns the error when at least one problem was recorded, nil otherwise.
func (e *IntegrityError) OrNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
