package request

import "time"

// HiringCreateRequest is the payload of POST /hirings/add.
//
// hiring_date is accepted for compatibility; the hiring date is always the
// issuance time.
type HiringCreateRequest struct {
	Name       string     `json:"name" binding:"required,max=255"`
	ProposalID string     `json:"proposal_id" binding:"required"`
	Approved   bool       `json:"approved"`
	HiringDate *time.Time `json:"hiring_date"`
}

func (r HiringCreateRequest) ResolveEffectiveDate() time.Time {
	if r.HiringDate == nil {
		return time.Time{}
	}
	return r.HiringDate.UTC()
}
