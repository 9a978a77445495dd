package service

import (
	"errors"
	"fmt"

	"wordtrainer/internal/domain"
)

// storeError passes expected store outcomes through and marks everything
// else as a store failure.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrNoSuchUser) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
