package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"insurances/internal/domain/entities"
	"insurances/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const proposalWithHiringColumns = `
	p.id, p.name, p.amount, p.status, p.disabled, p.created_at, p.updated_at,
	h.id, h.name, h.hiring_date, h.approved, h.created_at, h.updated_at`

// ProposalSQLiteRepository persists Proposal entities in SQLite.
//
// Amounts are stored as decimal strings. The hiring of a proposal is resolved
// with a LEFT JOIN on hirings.proposal_id.
type ProposalSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IProposalRepository = (*ProposalSQLiteRepository)(nil)

func NewProposalSQLiteRepository(db *sql.DB) *ProposalSQLiteRepository {
	return &ProposalSQLiteRepository{db: db}
}

func (r *ProposalSQLiteRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if p.ID == "" {
		p.ID = newID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO proposals (id, name, amount, status, disabled, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.Name,
		p.Amount.String(),
		string(p.Status),
		boolToInt(p.Disabled),
		toMillis(p.CreatedAt),
		toNullMillis(p.UpdatedAt),
	)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("create proposal: %w", err)
	}
	return p, nil
}

func (r *ProposalSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+proposalWithHiringColumns+`
		   FROM proposals p
		   LEFT JOIN hirings h ON h.proposal_id = p.id
		  WHERE p.id = ?`,
		id,
	)
	p, err := scanProposal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, fmt.Errorf("get proposal: %w", err)
	}
	return p, nil
}

func (r *ProposalSQLiteRepository) List(ctx context.Context, page entities.Pagination) ([]entities.Proposal, error) {
	out := []entities.Proposal{}
	if page.Take() == 0 || page.Unreachable() {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+proposalWithHiringColumns+`
		   FROM proposals p
		   LEFT JOIN hirings h ON h.proposal_id = p.id
		  ORDER BY p.id ASC
		  LIMIT ? OFFSET ?`,
		page.Take(),
		page.Skip(),
	)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("list proposals: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return out, nil
}

// UpdateStatus writes the full record. A missing id yields a zero-value Proposal.
func (r *ProposalSQLiteRepository) UpdateStatus(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE proposals
		    SET name = ?, amount = ?, status = ?, disabled = ?, updated_at = ?
		  WHERE id = ?`,
		p.Name,
		p.Amount.String(),
		string(p.Status),
		boolToInt(p.Disabled),
		toNullMillis(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("update proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("update proposal: %w", err)
	}
	if n == 0 {
		return entities.Proposal{}, nil
	}
	return p, nil
}

func scanProposal(s rowScanner) (entities.Proposal, error) {
	var (
		p          entities.Proposal
		amount     string
		status     string
		disabled   int
		createdAt  int64
		updatedAt  sql.NullInt64
		hID        sql.NullString
		hName      sql.NullString
		hDate      sql.NullInt64
		hApproved  sql.NullInt64
		hCreatedAt sql.NullInt64
		hUpdatedAt sql.NullInt64
	)
	err := s.Scan(
		&p.ID, &p.Name, &amount, &status, &disabled, &createdAt, &updatedAt,
		&hID, &hName, &hDate, &hApproved, &hCreatedAt, &hUpdatedAt,
	)
	if err != nil {
		return entities.Proposal{}, err
	}

	p.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	p.Status = entities.ProposalStatus(status)
	p.Disabled = disabled != 0
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromNullMillis(updatedAt)

	if hID.Valid {
		p.Hiring = &entities.Hiring{
			ID:         hID.String,
			Name:       hName.String,
			ProposalID: p.ID,
			HiringDate: fromMillis(hDate.Int64),
			Approved:   hApproved.Int64 != 0,
			CreatedAt:  fromMillis(hCreatedAt.Int64),
			UpdatedAt:  fromNullMillis(hUpdatedAt),
		}
	}
	return p, nil
}
