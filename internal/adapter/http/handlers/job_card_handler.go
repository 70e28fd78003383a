package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "jobcard_service/internal/adapter/http/dto/request"
	response "jobcard_service/internal/adapter/http/dto/response"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase"
	"jobcard_service/internal/usecase/interfaces"
	"jobcard_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobCardPayload = pkg.NewDomainErrorSimple("INVALID_JOB_CARD_INPUT", "Invalid job card payload", http.StatusBadRequest)

// JobCardHandler handles HTTP requests for job card intake and in-flight
// mutations (parts ledger, labor charge, detail edits, reads).

type JobCardHandler struct {
	usecase usecase.IJobCardUseCase
}

func NewJobCardHandler(uc usecase.IJobCardUseCase) *JobCardHandler {
	return &JobCardHandler{usecase: uc}
}

// CreateJobCard opens a new job card from the intake payload.
func (h *JobCardHandler) CreateJobCard(c *gin.Context) {
	var payload request.JobCardIntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobCardPayload.HTTPStatus, errInvalidJobCardPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateJob(c.Request.Context(), payload.ToIntake())
	if err != nil {
		log.Printf("[jobcard][handler] create failed err=%v", err)
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobCard(created))
}

// GetJobCard returns one job card by id.
func (h *JobCardHandler) GetJobCard(c *gin.Context) {
	j, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCard(j))
}

// ListJobCards lists job cards, optionally filtered by ?status= (OPEN|CLOSED)
// and free text ?q= over customer name / registration / phone / ticket no.
func (h *JobCardHandler) ListJobCards(c *gin.Context) {
	filter := interfaces.JobCardFilter{
		Status: entities.JobStatus(c.Query("status")),
		Query:  c.Query("q"),
	}

	jobs, err := h.usecase.ListJobs(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[jobcard][handler] list failed err=%v", err)
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCards(jobs))
}

// AddPart puts a catalog part on the job card's ledger.
func (h *JobCardHandler) AddPart(c *gin.Context) {
	id := c.Param("id")

	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobCardPayload.HTTPStatus, errInvalidJobCardPayload.ToHTTPError())
		return
	}

	j, err := h.usecase.AddPart(c.Request.Context(), id, payload.ExpectedVersion, payload.SKU, payload.ResolveQty())
	if err != nil {
		log.Printf("[jobcard][handler] add-part failed id=%s sku=%s err=%v", id, payload.SKU, err)
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCard(j))
}

// RemovePart deletes a whole part line. The expected version travels as
// ?expected_version= since DELETE carries no body.
func (h *JobCardHandler) RemovePart(c *gin.Context) {
	id := c.Param("id")
	sku := c.Param("sku")

	expectedVersion, err := strconv.ParseInt(c.Query("expected_version"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid expected_version", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	j, err := h.usecase.RemovePart(c.Request.Context(), id, expectedVersion, sku)
	if err != nil {
		log.Printf("[jobcard][handler] remove-part failed id=%s sku=%s err=%v", id, sku, err)
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCard(j))
}

// SetLaborCharge replaces the labor charge on an OPEN job card.
func (h *JobCardHandler) SetLaborCharge(c *gin.Context) {
	id := c.Param("id")

	var payload request.SetLaborChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobCardPayload.HTTPStatus, errInvalidJobCardPayload.ToHTTPError())
		return
	}

	j, err := h.usecase.SetLaborCharge(c.Request.Context(), id, payload.ExpectedVersion, payload.ResolveAmount())
	if err != nil {
		log.Printf("[jobcard][handler] set-labor failed id=%s err=%v", id, err)
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCard(j))
}

// UpdateJobCardDetails edits identifying/contextual fields while OPEN.
func (h *JobCardHandler) UpdateJobCardDetails(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobCardPayload.HTTPStatus, errInvalidJobCardPayload.ToHTTPError())
		return
	}

	j, err := h.usecase.UpdateDetails(c.Request.Context(), id, payload.ExpectedVersion, payload.ToDetails())
	if err != nil {
		log.Printf("[jobcard][handler] update-details failed id=%s err=%v", id, err)
		appErr := mapJobCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCard(j))
}

func mapJobCardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobCardID),
		errors.Is(err, usecase.ErrInvalidIntake),
		errors.Is(err, usecase.ErrInvalidSKU),
		errors.Is(err, usecase.ErrInvalidPartQty),
		errors.Is(err, usecase.ErrNegativeLaborCharge):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobCardNotFound):
		return pkg.NewDomainErrorSimple("JOB_CARD_NOT_FOUND", "Job card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobCardClosed):
		return pkg.NewDomainErrorSimple("JOB_CARD_CLOSED", "Job card is closed and immutable", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Job card was modified by another session; reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
