package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"insurances/internal/adapter/http/dto/request"
	"insurances/internal/usecase"
)

func TestMapInsuranceError(t *testing.T) {
	page := 0
	_, _, paginationErr := request.ProposalListRequest{Page: &page}.ResolvePagination(10, 100)
	_, statusErr := request.ProposalStatusUpdateRequest{ID: "p-1", Status: "PENDING"}.ResolveStatus()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"dto pagination", paginationErr, http.StatusBadRequest, "INVALID_REQUEST"},
		{"dto status", statusErr, http.StatusBadRequest, "INVALID_REQUEST"},
		{"blank proposal id", usecase.ErrInvalidProposalID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"blank hiring id", usecase.ErrInvalidHiringID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"negative amount", usecase.ErrInvalidProposalAmount, http.StatusBadRequest, "INVALID_REQUEST"},
		{"proposal not found", usecase.ErrProposalNotFound, http.StatusNotFound, "PROPOSAL_NOT_FOUND"},
		{"hiring not found", usecase.ErrHiringNotFound, http.StatusNotFound, "HIRING_NOT_FOUND"},
		{"not approved", usecase.ErrProposalNotApproved, http.StatusUnprocessableEntity, "PROPOSAL_NOT_APPROVED"},
		{"already hired", fmt.Errorf("%w: %w", usecase.ErrProposalAlreadyHired, errors.New("unique")), http.StatusConflict, "PROPOSAL_ALREADY_HIRED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatalf("expected a non-nil error")
			}
			appErr := mapInsuranceError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}
