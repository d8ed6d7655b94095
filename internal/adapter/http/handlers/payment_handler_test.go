package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bengkel_manager/internal/adapter/http/handlers/mocks"
	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services/:id/payments", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cash settlement returns receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services/:id/payments", h.RecordPayment)

		now := time.Now().UTC()
		uc.EXPECT().
			RecordPayment(gomock.Any(), "tenant-1", "svc-1", usecase.RecordPaymentInput{
				Amount:       220000,
				Method:       entities.PaymentMethodCash,
				CashReceived: 250000,
			}).
			Return(usecase.SettlementResult{
				Payment: entities.Payment{
					ID:            "pay-1",
					TenantID:      "tenant-1",
					ServiceID:     "svc-1",
					PaymentNumber: "PAY-001",
					Amount:        220000,
					Method:        entities.PaymentMethodCash,
					Status:        entities.PaymentStatusCompleted,
					PaymentDate:   now,
					CreatedAt:     now,
				},
				Status:    entities.PaymentStatusPaid,
				TotalPaid: 220000,
				Remaining: 0,
				ChangeDue: 30000,
			}, nil)

		body := `{"amount":"220000","payment_method":"Cash","cash_received":"250000"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["payment_status"] != "Paid" {
			t.Fatalf("unexpected payment_status: %s", w.Body.String())
		}
		if resp["change_due"] != 30000.0 {
			t.Fatalf("unexpected change_due: %s", w.Body.String())
		}
	})

	t.Run("already paid maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services/:id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "tenant-1", "svc-1", gomock.Any()).Return(usecase.SettlementResult{}, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/payments", bytes.NewBufferString(`{"amount":1000,"payment_method":"Cash","cash_received":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("overpayment maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services/:id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "tenant-1", "svc-1", gomock.Any()).Return(usecase.SettlementResult{}, usecase.ErrAmountExceedsBalance)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/payments", bytes.NewBufferString(`{"amount":999999,"payment_method":"BankTransfer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unsupported method maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services/:id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "tenant-1", "svc-1", gomock.Any()).Return(usecase.SettlementResult{}, usecase.ErrInvalidPaymentMethod)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/payments", bytes.NewBufferString(`{"amount":1000,"payment_method":"Cheque"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListByService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := tenantRouter("tenant-1")
	r.GET("/v1/services/:id/payments", h.ListByService)

	uc.EXPECT().ListByServiceID(gomock.Any(), "tenant-1", "svc-1").Return([]entities.Payment{
		{ID: "pay-1", ServiceID: "svc-1", Amount: 100000, Method: entities.PaymentMethodCash, Status: entities.PaymentStatusCompleted},
		{ID: "pay-2", ServiceID: "svc-1", Amount: 120000, Method: entities.PaymentMethodEWallet, Status: entities.PaymentStatusCompleted},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp) != 2 || resp[1]["payment_method"] != "EWallet" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInvalidPaymentMethod); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInsufficientCash); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrAmountExceedsBalance); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrOrderAlreadyPaid); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrPaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
