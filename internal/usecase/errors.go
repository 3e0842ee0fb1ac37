package usecase

import (
	"errors"
	"fmt"

	"plaiz_studio/internal/domain/lifecycle"
)

// Error taxonomy. Every error returned by this package matches exactly one of
// these roots with errors.Is; specific sentinels below wrap them.
var (
	ErrValidation      = errors.New("validation error")
	ErrPrecondition    = errors.New("precondition failed")
	ErrAmountMismatch  = errors.New("amount mismatch")
	ErrExternalService = errors.New("external service error")
	ErrNotFound        = errors.New("not found")
)

var (
	ErrForbidden = fmt.Errorf("%w: caller is not allowed to perform this action", ErrPrecondition)

	ErrInvalidProjectID   = fmt.Errorf("%w: invalid project id", ErrValidation)
	ErrInvalidAgreementID = fmt.Errorf("%w: invalid agreement id", ErrValidation)
	ErrInvalidPayoutID    = fmt.Errorf("%w: invalid payout id", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrInvalidSession     = fmt.Errorf("%w: missing or invalid session", ErrValidation)

	ErrProjectNotFound   = fmt.Errorf("project %w", ErrNotFound)
	ErrAgreementNotFound = fmt.Errorf("agreement %w", ErrNotFound)
	ErrPayoutNotFound    = fmt.Errorf("payout %w", ErrNotFound)

	// ErrStaleStatus is returned when a conditional status write lost to a
	// concurrent transition.
	ErrStaleStatus = fmt.Errorf("%w: project status changed concurrently", ErrPrecondition)
)

// external wraps a store or gateway failure, keeping the raw message.
func external(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrExternalService) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrExternalService, err)
}

// guardError converts a refused guard into the matching taxonomy error.
func guardError(r lifecycle.GuardResult) error {
	if r.Allowed {
		return nil
	}
	switch r.Violation {
	case lifecycle.ViolationValidation:
		return fmt.Errorf("%w: %s", ErrValidation, r.Reason)
	case lifecycle.ViolationForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, r.Reason)
	case lifecycle.ViolationAmountMismatch:
		return fmt.Errorf("%w: %s", ErrAmountMismatch, r.Reason)
	default:
		return fmt.Errorf("%w: %s", ErrPrecondition, r.Reason)
	}
}
