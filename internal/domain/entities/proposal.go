package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of an insurance proposal.
//
// Domain notes:
//   - Every proposal starts in ANALYSIS.
//   - APPROVED is the only status from which a hiring may be issued.
//   - Status changes are plain overwrites; no transition table is enforced.

type ProposalStatus string

const (
	ProposalStatusAnalysis ProposalStatus = "ANALYSIS"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusAnalysis, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// Proposal is an insurance offer under review.
//
// Hiring is never stored on the proposal record. Repositories resolve it by
// looking up the hiring that references the proposal id, so it is nil when the
// proposal was never hired.
type Proposal struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Status    ProposalStatus  `json:"status"`
	Disabled  bool            `json:"disabled"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`

	Hiring *Hiring `json:"hiring,omitempty"`
}

// IsApproved reports whether a hiring may be issued from the proposal's current status.
func (p Proposal) IsApproved() bool {
	return p.Status == ProposalStatusApproved
}

// HasHiring reports whether a hiring already references the proposal.
func (p Proposal) HasHiring() bool {
	return p.Hiring != nil && p.Hiring.ID != ""
}
