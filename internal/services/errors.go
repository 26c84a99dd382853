package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Repository error taxonomy. Every store operation surfaces one of these
// three conditions so handlers can present them distinctly: a missing row is
// a not-found page, a rejected constraint is a form error, anything else is
// a store failure.
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidationRejected = errors.New("validation rejected by store")
	ErrStoreUnreachable   = errors.New("store unreachable")
)

// storeError maps a raw store error onto the taxonomy, preserving the
// original message for diagnostics.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %v", ErrValidationRejected, err)
	}
	return fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	// Drivers that gorm does not translate surface constraint failures as text.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "duplicate")
}
