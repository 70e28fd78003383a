package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"jobcard_service/internal/adapter/http/handlers/mocks"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func closedJobCard() entities.JobCard {
	j := sampleJobCard()
	j.Status = entities.JobStatusClosed
	j.LaborCharge = entities.MoneyFromRupees(500)
	j.AddPart(entities.CatalogItem{SKU: "BRK-01", Name: "Brake Pad", UnitCost: entities.MoneyFromRupees(200)}, 2)
	j.Recalculate()
	now := time.Now().UTC()
	j.ClosingTime = &now
	j.Payment = &entities.Payment{
		Mode:        entities.PaymentModeUPI,
		UPIAmount:   entities.MoneyFromRupees(900),
		UPIAccount:  "showroom@upi",
		CollectedBy: "cashier-1",
	}
	j.Version = 6
	return j
}

func TestJobClosureHandler_CloseJobCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing mode is rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close", `{"expected_version":5,"upi_amount":900}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		uc.EXPECT().CloseJob(gomock.Any(), "job-1", int64(5), entities.Payment{
			Mode:        entities.PaymentModeUPI,
			UPIAmount:   entities.MoneyFromRupees(900),
			UPIAccount:  "showroom@upi",
			CollectedBy: "cashier-1",
		}).Return(closedJobCard(), nil)

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close",
			`{"expected_version":5,"mode":"UPI","upi_amount":900,"upi_account":"showroom@upi","collected_by":"cashier-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "CLOSED" {
			t.Fatalf("expected CLOSED, got %s", w.Body.String())
		}
		if body["total_charge"] != 900.0 {
			t.Fatalf("expected total_charge 900, got %v", body["total_charge"])
		}
	})

	t.Run("payment mismatch answers 422 with the signed diff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		uc.EXPECT().CloseJob(gomock.Any(), "job-1", int64(5), gomock.Any()).
			Return(entities.JobCard{}, &usecase.ReconciliationError{Diff: entities.MoneyFromRupees(100)})

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close",
			`{"expected_version":5,"mode":"upi","upi_amount":500,"cash_amount":300}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "PAYMENT_MISMATCH" {
			t.Fatalf("expected PAYMENT_MISMATCH, got %s", w.Body.String())
		}
		if body.Details["diff"] != 100.0 || body.Details["direction"] != "shortfall" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("excess diff direction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		uc.EXPECT().CloseJob(gomock.Any(), "job-1", int64(5), gomock.Any()).
			Return(entities.JobCard{}, &usecase.ReconciliationError{Diff: entities.MoneyFromRupees(-50)})

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close",
			`{"expected_version":5,"mode":"cash","cash_amount":950}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body struct {
			Details map[string]any `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Details["diff"] != -50.0 || body.Details["direction"] != "excess" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("invalid split maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		uc.EXPECT().CloseJob(gomock.Any(), "job-1", int64(5), gomock.Any()).
			Return(entities.JobCard{}, usecase.ErrInvalidPaymentSplit)

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close",
			`{"expected_version":5,"mode":"card","cash_amount":900}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("double close maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		uc.EXPECT().CloseJob(gomock.Any(), "job-1", int64(6), gomock.Any()).
			Return(entities.JobCard{}, usecase.ErrJobCardClosed)

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close",
			`{"expected_version":6,"mode":"upi","upi_amount":900}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("stale version maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobClosureUseCase(ctrl)
		h := NewJobClosureHandler(uc)

		r := gin.New()
		r.POST("/v1/jobcards/:id/close", h.CloseJobCard)

		uc.EXPECT().CloseJob(gomock.Any(), "job-1", int64(4), gomock.Any()).
			Return(entities.JobCard{}, interfaces.ErrVersionConflict)

		w := postJSON(r, http.MethodPost, "/v1/jobcards/job-1/close",
			`{"expected_version":4,"mode":"upi","upi_amount":900}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
