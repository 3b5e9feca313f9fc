package entities

import (
	"math"
	"testing"
)

func TestProposalStatus_Valid(t *testing.T) {
	for _, s := range []ProposalStatus{ProposalStatusAnalysis, ProposalStatusApproved, ProposalStatusRejected} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	for _, s := range []ProposalStatus{"", "approved", "CANCELLED"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestProposal_HasHiring(t *testing.T) {
	p := Proposal{ID: "p-1"}
	if p.HasHiring() {
		t.Fatalf("expected no hiring")
	}
	p.Hiring = &Hiring{}
	if p.HasHiring() {
		t.Fatalf("expected zero-value hiring to count as absent")
	}
	p.Hiring = &Hiring{ID: "h-1", ProposalID: "p-1"}
	if !p.HasHiring() {
		t.Fatalf("expected hiring")
	}
}

func TestPagination_SkipTake(t *testing.T) {
	cases := []struct {
		name       string
		p          Pagination
		skip, take int
	}{
		{name: "first page", p: Pagination{Page: 1, PageSize: 10}, skip: 0, take: 10},
		{name: "third page", p: Pagination{Page: 3, PageSize: 5}, skip: 10, take: 5},
		{name: "zero page size", p: Pagination{Page: 4, PageSize: 0}, skip: 0, take: 0},
		{name: "page zero", p: Pagination{Page: 0, PageSize: 5}, skip: 0, take: 5},
		{name: "last representable page", p: Pagination{Page: math.MaxInt / 4, PageSize: 4}, skip: (math.MaxInt/4 - 1) * 4, take: 4},
		{name: "offset overflow saturates", p: Pagination{Page: (1 << 58) + 1, PageSize: 64}, skip: math.MaxInt - 64, take: 64},
		{name: "huge page size", p: Pagination{Page: 1, PageSize: math.MaxInt}, skip: 0, take: math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Skip(); got != tc.skip {
				t.Fatalf("skip: expected %d got %d", tc.skip, got)
			}
			if got := tc.p.Take(); got != tc.take {
				t.Fatalf("take: expected %d got %d", tc.take, got)
			}
		})
	}
}

func TestPagination_Unreachable(t *testing.T) {
	cases := []struct {
		name string
		p    Pagination
		want bool
	}{
		{name: "first page", p: Pagination{Page: 1, PageSize: math.MaxInt}, want: false},
		{name: "ordinary page", p: Pagination{Page: 1000, PageSize: 100}, want: false},
		{name: "wrapping offset", p: Pagination{Page: (1 << 58) + 1, PageSize: 64}, want: true},
		{name: "negative wrap", p: Pagination{Page: (1 << 62) + 1, PageSize: 3}, want: true},
		{name: "second page of max size", p: Pagination{Page: 2, PageSize: math.MaxInt}, want: true},
		{name: "zero page size", p: Pagination{Page: math.MaxInt, PageSize: 0}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Unreachable(); got != tc.want {
				t.Fatalf("expected %t got %t", tc.want, got)
			}
			if tc.p.Skip() < 0 || tc.p.Skip() > math.MaxInt-tc.p.Take() {
				t.Fatalf("skip %d + take %d overflows", tc.p.Skip(), tc.p.Take())
			}
		})
	}
}
