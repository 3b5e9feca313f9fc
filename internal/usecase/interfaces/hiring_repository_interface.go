package interfaces

import (
	"context"
	"errors"
	"insurances/internal/domain/entities"
)

//go:generate mockgen -source=hiring_repository_interface.go -destination=mocks/mock_hiring_repository.go -package=mock_interfaces

// ErrHiringAlreadyExists is returned by Create when storage rejects a second
// hiring for the same proposal.
var ErrHiringAlreadyExists = errors.New("hiring already exists for proposal")

// IHiringRepository abstracts persistence for Hiring.
//
// Storage must enforce a uniqueness constraint on ProposalID; the check done by
// the use case before Create is not safe under concurrent callers.

type IHiringRepository interface {
	Create(ctx context.Context, h entities.Hiring) (entities.Hiring, error)
	GetByID(ctx context.Context, id string) (entities.Hiring, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.Hiring, error)
}
