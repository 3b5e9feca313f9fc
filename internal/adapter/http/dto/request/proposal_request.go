package request

import (
	"strings"

	"insurances/internal/domain/entities"
	"insurances/internal/usecase"

	"github.com/shopspring/decimal"
)

// ProposalCreateRequest is the payload of POST /proposals/add.
//
// amount accepts a JSON number or a quoted decimal string.
type ProposalCreateRequest struct {
	Name   string           `json:"name" binding:"required,max=255"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// ProposalStatusUpdateRequest is the payload of PUT /proposals/update/status.
type ProposalStatusUpdateRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// ResolveStatus accepts status names in any case.
func (r ProposalStatusUpdateRequest) ResolveStatus() (entities.ProposalStatus, error) {
	status := entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if !status.Valid() {
		return "", usecase.ErrInvalidProposalStatus
	}
	return status, nil
}

// ProposalListRequest binds the page/count query of GET /proposals/list.
type ProposalListRequest struct {
	Page  *int `form:"page"`
	Count *int `form:"count"`
}

// ResolvePagination fills defaults and clamps count to maxCount. A count of
// zero is kept: it asks for an empty page.
func (r ProposalListRequest) ResolvePagination(defaultCount, maxCount int) (page, count int, err error) {
	page, count = 1, defaultCount
	if r.Page != nil {
		page = *r.Page
	}
	if r.Count != nil {
		count = *r.Count
	}
	if page < 1 || count < 0 {
		return 0, 0, usecase.ErrInvalidPagination
	}
	if count > maxCount {
		count = maxCount
	}
	return page, count, nil
}
