package repository

import (
	"errors"
	"testing"
	"time"

	"insurances/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestProposalItemMapping(t *testing.T) {
	now := time.Date(2026, time.October, 1, 12, 0, 0, 123, time.UTC)
	p := entities.Proposal{
		ID:        "p-1",
		Name:      "Term Life",
		Amount:    decimal.RequireFromString("1500.10"),
		Status:    entities.ProposalStatusApproved,
		CreatedAt: now,
	}

	it := toProposalItem(p)
	if it.Kind != proposalKind || it.Amount != "1500.1" || it.Status != "APPROVED" || it.UpdatedAt != "" {
		t.Fatalf("unexpected item: %+v", it)
	}

	back, err := fromProposalItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ID != "p-1" || !back.Amount.Equal(p.Amount) || back.Status != p.Status || !back.CreatedAt.Equal(now) {
		t.Fatalf("unexpected proposal: %+v", back)
	}
	if back.UpdatedAt != nil {
		t.Fatalf("expected nil updated_at")
	}

	it.UpdatedAt = now.Format(time.RFC3339Nano)
	back, _ = fromProposalItem(it)
	if back.UpdatedAt == nil || !back.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at %s, got %v", now, back.UpdatedAt)
	}

	it.Amount = "not-a-number"
	if _, err := fromProposalItem(it); err == nil {
		t.Fatalf("expected amount parse error")
	}

	it.Amount = "10"
	it.CreatedAt = "yesterday"
	if _, err := fromProposalItem(it); err == nil {
		t.Fatalf("expected created_at parse error")
	}

	it.CreatedAt = now.Format(time.RFC3339Nano)
	it.UpdatedAt = "2026-13-40"
	if _, err := fromProposalItem(it); err == nil {
		t.Fatalf("expected updated_at parse error")
	}
}

func TestHiringItemMapping(t *testing.T) {
	now := time.Date(2026, time.October, 3, 10, 0, 0, 0, time.UTC)
	h := entities.Hiring{ID: "h-1", Name: "Policy A", ProposalID: "p-1", HiringDate: now, Approved: true, CreatedAt: now}

	it := toHiringItem(h)
	if it.Kind != hiringKind || it.ProposalID != "p-1" || !it.Approved {
		t.Fatalf("unexpected item: %+v", it)
	}
	back, err := fromHiringItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ID != "h-1" || back.ProposalID != "p-1" || !back.HiringDate.Equal(now) || back.UpdatedAt != nil {
		t.Fatalf("unexpected hiring: %+v", back)
	}

	corrupt := it
	corrupt.HiringDate = ""
	if _, err := fromHiringItem(corrupt); err == nil {
		t.Fatalf("expected hiring_date parse error")
	}
	corrupt = it
	corrupt.UpdatedAt = "not-a-time"
	if _, err := fromHiringItem(corrupt); err == nil {
		t.Fatalf("expected updated_at parse error")
	}
}

func TestNewIDIsTimeOrdered(t *testing.T) {
	prev := newID()
	for i := 0; i < 1000; i++ {
		id := newID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("invalid id %q: %v", id, err)
		}
		if parsed.Version() != 7 {
			t.Fatalf("expected UUIDv7, got version %d", parsed.Version())
		}
		if id <= prev {
			t.Fatalf("expected %q > %q", id, prev)
		}
		prev = id
	}
}

func TestProposalMarkerKey(t *testing.T) {
	if got := proposalMarkerKey("p-1"); got != "proposal#p-1" {
		t.Fatalf("unexpected marker key %q", got)
	}
}

func TestIsMarkerConflict(t *testing.T) {
	conflict := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		},
	}
	if !isMarkerConflict(conflict) {
		t.Fatalf("expected conflict")
	}

	hiringIDClash := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	if isMarkerConflict(hiringIDClash) {
		t.Fatalf("expected hiring id clash not to be a proposal conflict")
	}

	if isMarkerConflict(&types.TransactionCanceledException{}) {
		t.Fatalf("expected no conflict without reasons")
	}
	if isMarkerConflict(errors.New("network")) {
		t.Fatalf("expected plain error not to be a conflict")
	}
}

func TestMergeNames(t *testing.T) {
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#id": "id"})
	if len(got) != 2 || got["#a"] != "a" || got["#id"] != "id" {
		t.Fatalf("unexpected merge: %v", got)
	}
	if got := mergeNames(nil, map[string]string{"#id": "id"}); got["#id"] != "id" {
		t.Fatalf("unexpected merge with empty left: %v", got)
	}
}
