package usecase

import (
	"context"
	"insurances/internal/domain/entities"
	"insurances/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IProposalUseCase owns the proposal lifecycle.
//
//   - Create => new proposal in ANALYSIS
//   - UpdateStatus => direct status overwrite, no transition table
//   - List => proposals ordered by id, sliced by page/pageSize

type IProposalUseCase interface {
	Create(ctx context.Context, name string, amount decimal.Decimal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, page, pageSize int) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo interfaces.IProposalRepository
}

var (
	_ IProposalUseCase           = (*ProposalUseCase)(nil)
	_ interfaces.IProposalReader = (*ProposalUseCase)(nil)
)

func NewProposalUseCase(repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

func (u *ProposalUseCase) Create(ctx context.Context, name string, amount decimal.Decimal) (entities.Proposal, error) {
	if amount.IsNegative() {
		return entities.Proposal{}, ErrInvalidProposalAmount
	}

	p := entities.Proposal{
		ID:        newID(),
		Name:      name,
		Amount:    amount,
		Status:    entities.ProposalStatusAnalysis,
		Disabled:  false,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] create failed name=%q err=%v", name, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// List returns an empty slice, never nil, when the page lies beyond the data
// or pageSize is zero. Pages whose offset does not fit in an int are past any
// data and never reach the repository.
func (u *ProposalUseCase) List(ctx context.Context, page, pageSize int) ([]entities.Proposal, error) {
	if page < 1 || pageSize < 0 {
		return nil, ErrInvalidPagination
	}
	pagination := entities.Pagination{Page: page, PageSize: pageSize}
	if pageSize == 0 || pagination.Unreachable() {
		return []entities.Proposal{}, nil
	}

	proposals, err := u.repo.List(ctx, pagination)
	if err != nil {
		return nil, err
	}
	if proposals == nil {
		proposals = []entities.Proposal{}
	}
	return proposals, nil
}

func (u *ProposalUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	if !status.Valid() {
		return entities.Proposal{}, ErrInvalidProposalStatus
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	previous := p.Status
	now := time.Now().UTC()
	p.Status = status
	p.UpdatedAt = &now

	updated, err := u.repo.UpdateStatus(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] update status failed proposal_id=%s err=%v", p.ID, err)
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	if updated.Hiring == nil {
		updated.Hiring = p.Hiring
	}
	log.Printf("[proposal][usecase] status updated proposal_id=%s from=%s to=%s", updated.ID, previous, updated.Status)
	return updated, nil
}

// newID returns a time-ordered UUID so ascending id order follows insertion order.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
