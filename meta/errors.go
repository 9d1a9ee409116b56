package meta

import (
	"errors"
	"fmt"
)

var (
	ErrFieldNotFound       = errors.New("field not found")
	ErrUnknownEnumName     = errors.New("unknown enum name")
	ErrUnknownEnumValue    = errors.New("unknown enum value")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrNullDereference     = errors.New("null dereference")
	ErrConstructorNotFound = errors.New("constructor not found")
	ErrMethodNotFound      = errors.New("method not found")
	ErrDuplicateType       = errors.New("duplicate type")
	ErrTypeNotFound        = errors.New("type not found")
	ErrInvalidDescriptor   = errors.New("invalid descriptor")
	ErrFrozen              = errors.New("registry is frozen")
)

// RegistryError reports a failure to register or resolve a type.
type RegistryError struct {
	TypeName string
	Message  string
	Err      error
}

func (e *RegistryError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("registry error for %q: %s", e.TypeName, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// CastError reports a value whose type does not match what was asked of it.
type CastError struct {
	Expected string
	Actual   string
	Message  string
	Err      error
}

func (e *CastError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("cast error: %s", msg)
}

func (e *CastError) Unwrap() error {
	if e.Err == nil {
		return ErrTypeMismatch
	}
	return e.Err
}

func mismatch(expected, actual string) error {
	return &CastError{Expected: expected, Actual: actual, Err: ErrTypeMismatch}
}
