package alloc

import (
	"fmt"
	"io"
	"os"
)

// Kind classifies an integrity violation.
type Kind uint8

const (
	KindNullPointer    Kind = 1 // Free(Null)
	KindForeignPointer Kind = 2 // pointer does not start any chunk's data region
	KindDoubleFree     Kind = 3 // chunk is already free
	KindCorrupt        Kind = 4 // header failed validation
)

func (k Kind) String() string {
	switch k {
	case KindNullPointer:
		return "null pointer"
	case KindForeignPointer:
		return "foreign pointer"
	case KindDoubleFree:
		return "double free"
	case KindCorrupt:
		return "corrupt heap"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IntegrityError describes a detected heap-integrity violation.
type IntegrityError struct {
	Kind   Kind
	Op     string // "alloc" or "free"
	Ptr    Ptr    // pointer passed by the caller, Null for alloc
	Offset int    // chunk offset involved, or -1
	Err    error  // underlying validation error, if any
}

func (e *IntegrityError) Error() string {
	var msg string
	switch e.Kind {
	case KindNullPointer:
		msg = "attempt to free a NULL pointer"
	case KindForeignPointer:
		msg = fmt.Sprintf("pointer %d does not belong to the heap", e.Ptr)
	case KindDoubleFree:
		msg = fmt.Sprintf("double free detected (pointer %d, chunk %d)", e.Ptr, e.Offset)
	default:
		msg = e.Kind.String()
		if e.Offset >= 0 {
			msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("alloc: %s: %s", e.Op, msg)
}

// Unwrap exposes both ErrIntegrity and the underlying cause to errors.Is.
func (e *IntegrityError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIntegrity}
	}
	return []error{ErrIntegrity, e.Err}
}

// Policy decides what happens once a violation has been detected. Violations
// found while locating the target chunk leave the heap unmodified. A Policy
// that returns makes the operation return that error.
type Policy func(*IntegrityError) error

// Test hooks for FatalPolicy.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// FatalPolicy prints the violation to stderr and terminates the process with
// exit status 1. It is the default.
func FatalPolicy(e *IntegrityError) error {
	fmt.Fprintf(stderr, "Error: %s\n", e)
	exit(1)
	return e
}

// ReturnPolicy returns the violation to the caller.
func ReturnPolicy(e *IntegrityError) error {
	return e
}
