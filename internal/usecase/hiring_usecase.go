package usecase

import (
	"context"
	"errors"
	"fmt"
	"insurances/internal/domain/entities"
	"insurances/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// IHiringUseCase issues hirings from approved proposals.
//
// Issuance is the only path that creates a hiring: the proposal must exist, be
// APPROVED and have no hiring yet. Storage enforces the last rule as well,
// since two concurrent callers can both pass the check.

type IHiringUseCase interface {
	Create(ctx context.Context, name, proposalID string, effectiveDate time.Time, approved bool) (entities.Hiring, error)
	GetByID(ctx context.Context, id string) (entities.Hiring, error)
}

type HiringUseCase struct {
	repo      interfaces.IHiringRepository
	proposals interfaces.IProposalReader
}

var _ IHiringUseCase = (*HiringUseCase)(nil)

func NewHiringUseCase(repo interfaces.IHiringRepository, proposals interfaces.IProposalReader) *HiringUseCase {
	return &HiringUseCase{repo: repo, proposals: proposals}
}

func (u *HiringUseCase) Create(ctx context.Context, name, proposalID string, effectiveDate time.Time, approved bool) (entities.Hiring, error) {
	log.Printf("[hiring][usecase] create start raw_proposal_id=%q approved=%t", proposalID, approved)
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Hiring{}, ErrInvalidProposalID
	}

	proposal, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		log.Printf("[hiring][usecase] failed loading proposal proposal_id=%s err=%v", proposalID, err)
		return entities.Hiring{}, err
	}
	if !proposal.IsApproved() {
		log.Printf("[hiring][usecase] proposal not approved proposal_id=%s status=%s", proposalID, proposal.Status)
		return entities.Hiring{}, ErrProposalNotApproved
	}
	if proposal.HasHiring() {
		log.Printf("[hiring][usecase] proposal already hired proposal_id=%s hiring_id=%s", proposalID, proposal.Hiring.ID)
		return entities.Hiring{}, ErrProposalAlreadyHired
	}

	now := time.Now().UTC()
	if !effectiveDate.IsZero() {
		log.Printf("[hiring][usecase] caller effective date ignored proposal_id=%s effective_date=%s", proposalID, effectiveDate.Format(time.RFC3339))
	}
	h := entities.Hiring{
		ID:         newID(),
		Name:       name,
		ProposalID: proposal.ID,
		HiringDate: now,
		Approved:   approved,
		CreatedAt:  now,
	}

	created, err := u.repo.Create(ctx, h)
	if err != nil {
		if errors.Is(err, interfaces.ErrHiringAlreadyExists) {
			log.Printf("[hiring][usecase] storage rejected duplicate hiring proposal_id=%s", proposalID)
			return entities.Hiring{}, fmt.Errorf("%w: %w", ErrProposalAlreadyHired, err)
		}
		log.Printf("[hiring][usecase] hiring repository create failed proposal_id=%s err=%v", proposalID, err)
		return entities.Hiring{}, err
	}
	log.Printf("[hiring][usecase] create success proposal_id=%s hiring_id=%s", proposalID, created.ID)
	return created, nil
}

func (u *HiringUseCase) GetByID(ctx context.Context, id string) (entities.Hiring, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Hiring{}, ErrInvalidHiringID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Hiring{}, err
	}
	if h.ID == "" {
		return entities.Hiring{}, ErrHiringNotFound
	}
	return h, nil
}
