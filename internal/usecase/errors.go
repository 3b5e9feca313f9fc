package usecase

import (
	"errors"
	"fmt"
)

// Error classes. Every error below wraps at most one of them so callers can
// branch with errors.Is on the class alone.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrProposalNotFound     = fmt.Errorf("proposal %w", ErrNotFound)
	ErrHiringNotFound       = fmt.Errorf("hiring %w", ErrNotFound)
	ErrProposalNotApproved  = fmt.Errorf("proposal not approved: %w", ErrInvalidState)
	ErrProposalAlreadyHired = fmt.Errorf("proposal already hired: %w", ErrConflict)

	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidHiringID       = errors.New("invalid hiring id")
	ErrInvalidProposalAmount = errors.New("invalid proposal amount")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrInvalidPagination     = errors.New("invalid pagination")
)
