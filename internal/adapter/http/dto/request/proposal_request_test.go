package request

import (
	"errors"
	"testing"
	"time"

	"insurances/internal/domain/entities"
	"insurances/internal/usecase"
)

func TestProposalStatusUpdateRequest_ResolveStatus(t *testing.T) {
	got, err := ProposalStatusUpdateRequest{ID: "p-1", Status: " approved "}.ResolveStatus()
	if err != nil || got != entities.ProposalStatusApproved {
		t.Fatalf("expected APPROVED, got %q err=%v", got, err)
	}

	_, err = ProposalStatusUpdateRequest{ID: "p-1", Status: "cancelled"}.ResolveStatus()
	if !errors.Is(err, usecase.ErrInvalidProposalStatus) {
		t.Fatalf("expected ErrInvalidProposalStatus, got %v", err)
	}
}

func TestProposalListRequest_ResolvePagination(t *testing.T) {
	intp := func(v int) *int { return &v }

	cases := []struct {
		name        string
		req         ProposalListRequest
		page, count int
		wantErr     bool
	}{
		{name: "defaults", req: ProposalListRequest{}, page: 1, count: 10},
		{name: "explicit", req: ProposalListRequest{Page: intp(3), Count: intp(5)}, page: 3, count: 5},
		{name: "clamped", req: ProposalListRequest{Page: intp(1), Count: intp(1000)}, page: 1, count: 100},
		{name: "zero count", req: ProposalListRequest{Count: intp(0)}, page: 1, count: 0},
		{name: "page zero", req: ProposalListRequest{Page: intp(0)}, wantErr: true},
		{name: "negative count", req: ProposalListRequest{Count: intp(-1)}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, count, err := tc.req.ResolvePagination(10, 100)
			if tc.wantErr {
				if !errors.Is(err, usecase.ErrInvalidPagination) {
					t.Fatalf("expected ErrInvalidPagination, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tc.page || count != tc.count {
				t.Fatalf("expected %d/%d got %d/%d", tc.page, tc.count, page, count)
			}
		})
	}
}

func TestHiringCreateRequest_ResolveEffectiveDate(t *testing.T) {
	if !(HiringCreateRequest{}).ResolveEffectiveDate().IsZero() {
		t.Fatalf("expected zero date")
	}
	loc := time.FixedZone("BRT", -3*60*60)
	d := time.Date(2026, time.November, 1, 9, 0, 0, 0, loc)
	got := HiringCreateRequest{HiringDate: &d}.ResolveEffectiveDate()
	if got.Location() != time.UTC || !got.Equal(d) {
		t.Fatalf("unexpected date %s", got)
	}
}
