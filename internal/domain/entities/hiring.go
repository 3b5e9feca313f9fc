package entities

import "time"

// Hiring is the contract issued from an approved proposal.
//
// Storage model:
//   - PK: id
//   - proposal_id is unique: a proposal is hired at most once.
//
// Approved is the contract-level approval flag and is unrelated to the
// owning proposal's status.
type Hiring struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ProposalID string     `json:"proposal_id"`
	HiringDate time.Time  `json:"hiring_date"`
	Approved   bool       `json:"approved"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
