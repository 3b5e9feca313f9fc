package response

import (
	"insurances/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

type ProposalResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Disabled   bool            `json:"disabled"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
	HiringID   *string         `json:"hiring_id"`
	HiringDate *time.Time      `json:"hiring_date"`
}

type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

// FromProposal exposes the hiring only as a summary (id and creation date).
func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:        p.ID,
		Name:      p.Name,
		Amount:    p.Amount,
		Status:    string(p.Status),
		Disabled:  p.Disabled,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.HasHiring() {
		id := p.Hiring.ID
		created := p.Hiring.CreatedAt
		res.HiringID = &id
		res.HiringDate = &created
	}
	return res
}

func FromProposals(ps []entities.Proposal) ProposalListResponse {
	out := ProposalListResponse{Proposals: make([]ProposalResponse, 0, len(ps))}
	for _, p := range ps {
		out.Proposals = append(out.Proposals, FromProposal(p))
	}
	return out
}
