package handlers

import (
	"errors"
	"insurances/internal/usecase"
	"insurances/pkg"
	"net/http"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapInsuranceError translates use case errors for both proposal and hiring routes.
func mapInsuranceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidHiringID),
		errors.Is(err, usecase.ErrInvalidProposalAmount),
		errors.Is(err, usecase.ErrInvalidProposalStatus),
		errors.Is(err, usecase.ErrInvalidPagination):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHiringNotFound):
		return pkg.NewDomainErrorSimple("HIRING_NOT_FOUND", "Hiring not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_APPROVED", "Proposal not approved", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProposalAlreadyHired):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_HIRED", "Proposal already hired", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
