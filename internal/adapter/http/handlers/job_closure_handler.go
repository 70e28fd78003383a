package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "jobcard_service/internal/adapter/http/dto/request"
	response "jobcard_service/internal/adapter/http/dto/response"
	"jobcard_service/internal/usecase"
	"jobcard_service/pkg"

	"github.com/gin-gonic/gin"
)

// JobClosureHandler handles the payment-reconciled OPEN→CLOSED transition.

type JobClosureHandler struct {
	usecase usecase.IJobClosureUseCase
}

func NewJobClosureHandler(uc usecase.IJobClosureUseCase) *JobClosureHandler {
	return &JobClosureHandler{usecase: uc}
}

// CloseJobCard validates the proposed payment split against the recomputed
// total and commits the terminal state. A mismatch answers 422 with the exact
// signed diff so the operator can correct the cash/UPI split and retry.
func (h *JobClosureHandler) CloseJobCard(c *gin.Context) {
	id := c.Param("id")

	var payload request.CloseJobCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	closed, err := h.usecase.CloseJob(c.Request.Context(), id, payload.ExpectedVersion, payload.ToPayment())
	if err != nil {
		log.Printf("[closure][handler] close failed id=%s err=%v", id, err)
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[closure][handler] close success id=%s ticket_no=%s", closed.ID, closed.TicketNo)

	c.JSON(http.StatusOK, response.FromJobCard(closed))
}

func mapClosureError(err error) *pkg.AppError {
	var recErr *usecase.ReconciliationError
	if errors.As(err, &recErr) {
		direction := "shortfall"
		if recErr.Diff < 0 {
			direction = "excess"
		}
		return pkg.NewDomainErrorSimple(
			"PAYMENT_MISMATCH",
			fmt.Sprintf("Collected amount does not match total charge (%s of %s)", direction, recErr.Diff.Abs()),
			http.StatusUnprocessableEntity,
		).WithDetails(map[string]interface{}{
			"diff":      recErr.Diff.Rupees(),
			"direction": direction,
		})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentSplit):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment split", http.StatusBadRequest)
	default:
		return mapJobCardError(err)
	}
}
