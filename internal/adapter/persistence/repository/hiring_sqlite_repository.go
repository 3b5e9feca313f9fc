package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"insurances/internal/domain/entities"
	"insurances/internal/usecase/interfaces"
)

const hiringColumns = `id, name, proposal_id, hiring_date, approved, created_at, updated_at`

// HiringSQLiteRepository persists Hiring entities in SQLite.
//
// The unique index hirings_proposal_id_unique is the real guard against two
// hirings for one proposal; a violation surfaces as ErrHiringAlreadyExists.
type HiringSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IHiringRepository = (*HiringSQLiteRepository)(nil)

func NewHiringSQLiteRepository(db *sql.DB) *HiringSQLiteRepository {
	return &HiringSQLiteRepository{db: db}
}

func (r *HiringSQLiteRepository) Create(ctx context.Context, h entities.Hiring) (entities.Hiring, error) {
	if h.ID == "" {
		h.ID = newID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hirings (`+hiringColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ID,
		h.Name,
		h.ProposalID,
		toMillis(h.HiringDate),
		boolToInt(h.Approved),
		toMillis(h.CreatedAt),
		toNullMillis(h.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "hirings.proposal_id") {
			return entities.Hiring{}, interfaces.ErrHiringAlreadyExists
		}
		return entities.Hiring{}, fmt.Errorf("create hiring: %w", err)
	}
	return h, nil
}

func (r *HiringSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Hiring, error) {
	return r.getOne(ctx, `SELECT `+hiringColumns+` FROM hirings WHERE id = ?`, id)
}

func (r *HiringSQLiteRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Hiring, error) {
	return r.getOne(ctx, `SELECT `+hiringColumns+` FROM hirings WHERE proposal_id = ?`, proposalID)
}

func (r *HiringSQLiteRepository) getOne(ctx context.Context, query string, arg string) (entities.Hiring, error) {
	var (
		h         entities.Hiring
		date      int64
		approved  int
		createdAt int64
		updatedAt sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&h.ID, &h.Name, &h.ProposalID, &date, &approved, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Hiring{}, nil
		}
		return entities.Hiring{}, fmt.Errorf("get hiring: %w", err)
	}
	h.HiringDate = fromMillis(date)
	h.Approved = approved != 0
	h.CreatedAt = fromMillis(createdAt)
	h.UpdatedAt = fromNullMillis(updatedAt)
	return h, nil
}
