package darray

import (
	"errors"
	"fmt"
)

// Sort is declared as part of the array contract but intentionally has
// no ordering algorithm yet: neither the comparator semantics nor a
// stability guarantee have been settled, so it always reports
// errors.ErrUnsupported instead of guessing one.
func (d *DArray[T]) Sort(less func(a, b T) bool) error {
	return fmt.Errorf("sort: %w", errors.ErrUnsupported)
}
