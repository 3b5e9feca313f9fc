package interfaces

import (
	"context"
	"insurances/internal/domain/entities"
)

//go:generate mockgen -source=proposal_repository_interface.go -destination=mocks/mock_proposal_repository.go -package=mock_interfaces

// IProposalRepository abstracts persistence for Proposal.
//
// Absent records are returned as a zero-value Proposal (empty ID) with a nil
// error, for both reads and UpdateStatus. GetByID and List resolve the
// proposal's Hiring through the hiring store.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, page entities.Pagination) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
}

// IProposalReader is the read path of the proposal lifecycle. Hiring issuance
// depends on it instead of the repository so it sees proposals exactly as
// callers of the lifecycle do.
type IProposalReader interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
}
