package response

import (
	"insurances/internal/domain/entities"
	"time"
)

type HiringResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ProposalID string     `json:"proposal_id"`
	HiringDate time.Time  `json:"hiring_date"`
	Approved   bool       `json:"approved"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func FromHiring(h entities.Hiring) HiringResponse {
	return HiringResponse{
		ID:         h.ID,
		Name:       h.Name,
		ProposalID: h.ProposalID,
		HiringDate: h.HiringDate,
		Approved:   h.Approved,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}
