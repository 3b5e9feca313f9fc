package handlers

import (
	request "insurances/internal/adapter/http/dto/request"
	response "insurances/internal/adapter/http/dto/response"
	"insurances/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles HTTP requests for insurance proposals.

type ProposalHandler struct {
	usecase         usecase.IProposalUseCase
	defaultPageSize int
	maxPageSize     int
}

func NewProposalHandler(uc usecase.IProposalUseCase, defaultPageSize, maxPageSize int) *ProposalHandler {
	return &ProposalHandler{usecase: uc, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[proposal][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Name, *payload.Amount)
	if err != nil {
		log.Printf("[proposal][handler] create failed name=%q err=%v", payload.Name, err)
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(created))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id := c.Param("id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[proposal][handler] get failed proposal_id=%s err=%v", id, err)
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var query request.ProposalListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Printf("[proposal][handler] list invalid query err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	page, count, err := query.ResolvePagination(h.defaultPageSize, h.maxPageSize)
	if err != nil {
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	proposals, err := h.usecase.List(c.Request.Context(), page, count)
	if err != nil {
		log.Printf("[proposal][handler] list failed page=%d count=%d err=%v", page, count, err)
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	var payload request.ProposalStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[proposal][handler] update status invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), payload.ID, status)
	if err != nil {
		log.Printf("[proposal][handler] update status failed proposal_id=%s status=%s err=%v", payload.ID, status, err)
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(updated))
}
