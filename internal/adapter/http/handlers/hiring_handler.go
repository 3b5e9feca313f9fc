package handlers

import (
	request "insurances/internal/adapter/http/dto/request"
	response "insurances/internal/adapter/http/dto/response"
	"insurances/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HiringHandler handles HTTP requests for hirings issued from proposals.

type HiringHandler struct {
	usecase usecase.IHiringUseCase
}

func NewHiringHandler(uc usecase.IHiringUseCase) *HiringHandler {
	return &HiringHandler{usecase: uc}
}

func (h *HiringHandler) CreateHiring(c *gin.Context) {
	var payload request.HiringCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[hiring][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	log.Printf("[hiring][handler] create start proposal_id=%s", payload.ProposalID)

	created, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.ProposalID, payload.ResolveEffectiveDate(), payload.Approved)
	if err != nil {
		log.Printf("[hiring][handler] create failed proposal_id=%s err=%v", payload.ProposalID, err)
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hiring][handler] create success proposal_id=%s hiring_id=%s", created.ProposalID, created.ID)

	c.JSON(http.StatusCreated, response.FromHiring(created))
}

func (h *HiringHandler) GetHiring(c *gin.Context) {
	id := c.Param("id")

	hiring, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[hiring][handler] get failed hiring_id=%s err=%v", id, err)
		appErr := mapInsuranceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHiring(hiring))
}
