package apperrors

import "errors"

// NotFoundError indicates that a referenced record does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound creates a NotFoundError with the given message.
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// DomainError indicates a business-rule violation: duplicate unique key,
// inactive product, non-positive quantity, unpaid order, or an entity
// that is still referenced by another record.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomain creates a DomainError with the given message.
func NewDomain(message string) error {
	return &DomainError{Message: message}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsDomain reports whether err is (or wraps) a DomainError.
func IsDomain(err error) bool {
	var target *DomainError
	return errors.As(err, &target)
}
