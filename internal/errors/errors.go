package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotInitialized = errors.New("not initialized")
	ErrInvalidInput   = errors.New("invalid input")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "palette color", "file color", "vault"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError indicates a resource already exists.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotInitializedError indicates no vault or plugin settings could be found.
type NotInitializedError struct {
	Path string
}

func (e *NotInitializedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("file color settings not found in %s (run 'filecolor init')", e.Path)
	}
	return "no vault found (run inside a vault, pass --vault, or run 'filecolor init')"
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

// Helper constructors for common cases

func ColorNotFound(idOrName string) error {
	return &NotFoundError{Resource: "palette color", ID: idOrName}
}

func AssignmentNotFound(path string) error {
	return &NotFoundError{Resource: "file color", ID: path}
}

func VaultNotFound(name string) error {
	return &NotFoundError{Resource: "vault", ID: name}
}

func SettingsAlreadyExist(path string) error {
	return &AlreadyExistsError{Resource: "settings file", ID: path}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func AmbiguousColor(name string, ids []string) error {
	return &ValidationError{
		Field:   "color",
		Message: fmt.Sprintf("name %q matches several colors (%s); use an id", name, strings.Join(ids, ", ")),
	}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotInitialized checks if an error is a not-initialized error.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}
