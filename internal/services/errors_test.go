package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestStoreError_Nil(t *testing.T) {
	if err := storeError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestStoreError_NotFound(t *testing.T) {
	err := storeError(gorm.ErrRecordNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreError_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"foreign key", gorm.ErrForeignKeyViolated},
		{"duplicated key", gorm.ErrDuplicatedKey},
		{"check constraint", gorm.ErrCheckConstraintViolated},
		{"sqlite text", errors.New("FOREIGN KEY constraint failed")},
		{"postgres text", errors.New("insert or update on table violates foreign key constraint")},
		{"mysql duplicate text", errors.New("Duplicate entry 'x' for key 'y'")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError(tt.err)
			if !errors.Is(err, ErrValidationRejected) {
				t.Errorf("expected ErrValidationRejected, got %v", err)
			}
		})
	}
}

func TestStoreError_Unreachable(t *testing.T) {
	err := storeError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))
	if !errors.Is(err, ErrStoreUnreachable) {
		t.Errorf("expected ErrStoreUnreachable, got %v", err)
	}
}

func TestStoreError_PreservesMessage(t *testing.T) {
	raw := errors.New("dial tcp: no route to host")
	err := storeError(raw)
	if err.Error() == ErrStoreUnreachable.Error() {
		t.Error("expected the original message to be preserved in the wrap")
	}
}

func TestStoreError_Disjoint(t *testing.T) {
	// A mapped error must match exactly one taxonomy sentinel
	cases := []error{
		storeError(gorm.ErrRecordNotFound),
		storeError(gorm.ErrForeignKeyViolated),
		storeError(errors.New("connection reset by peer")),
	}

	for _, err := range cases {
		matches := 0
		for _, sentinel := range []error{ErrNotFound, ErrValidationRejected, ErrStoreUnreachable} {
			if errors.Is(err, sentinel) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("error %v matches %d sentinels, expected 1", err, matches)
		}
	}
}
