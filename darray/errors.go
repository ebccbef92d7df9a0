package darray

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Pop and Shift when there is no element to
// remove. It is intentionally outside the Class taxonomy: an empty
// array is a normal condition, not a failure of the structure.
var ErrEmpty = errors.New("empty array")

// Class is the general category of a failure.
type Class int

const (
	// ClassMemory is reserved for backing store allocation failures.
	// The Go runtime aborts on allocation failure, so this class never
	// surfaces in practice, but the code space keeps room for it.
	ClassMemory Class = iota + 1

	// ClassArgs marks a caller error: a constraint on an argument was
	// violated and no mutation took place.
	ClassArgs

	// ClassData marks an internally inconsistent or released array.
	ClassData
)

func (c Class) String() string {
	switch c {
	case ClassMemory:
		return "memory"
	case ClassArgs:
		return "args"
	case ClassData:
		return "data"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Detail narrows a Class down to the exact constraint or nested call
// that failed.
type Detail int

const (
	DetailNone Detail = iota

	// New
	DetailCapacity
	DetailMaxPoolSize
	DetailExpandRate
	DetailPoolSize

	// Move
	DetailMoveBounds

	// Nested calls
	DetailExpandFailed
	DetailMoveFailed

	// Operations on a destroyed array
	DetailReleased
)

func (d Detail) String() string {
	switch d {
	case DetailNone:
		return "none"
	case DetailCapacity:
		return "capacity out of range"
	case DetailMaxPoolSize:
		return "max pool size out of range"
	case DetailExpandRate:
		return "expand rate out of range"
	case DetailPoolSize:
		return "pool size out of range"
	case DetailMoveBounds:
		return "move before start of store"
	case DetailExpandFailed:
		return "expand failed"
	case DetailMoveFailed:
		return "move failed"
	case DetailReleased:
		return "store released"
	}
	return fmt.Sprintf("detail(%d)", int(d))
}

// Error is the structured failure of an array operation. Cause chains
// one Error into another, so a failure deep inside Expand keeps its
// identity when surfaced through Move and then Shift.
type Error struct {
	Op     string
	Class  Class
	Detail Detail
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Detail, e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Detail, e.Class)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ClassOf walks an error chain and returns the Class of the innermost
// *Error, or 0 when the chain carries none.
func ClassOf(err error) Class {
	var class Class
	for err != nil {
		e := &Error{}
		if !errors.As(err, &e) {
			break
		}
		class = e.Class
		err = e.Cause
	}
	return class
}

func errArgs(op string, detail Detail) *Error {
	return &Error{Op: op, Class: ClassArgs, Detail: detail}
}

func errData(op string, detail Detail) *Error {
	return &Error{Op: op, Class: ClassData, Detail: detail}
}

// wrap chains a nested failure, lifting the class of the cause so
// callers can classify without unwrapping.
func wrap(op string, detail Detail, cause error) *Error {
	class := ClassOf(cause)
	if class == 0 {
		class = ClassData
	}
	return &Error{Op: op, Class: class, Detail: detail, Cause: cause}
}
