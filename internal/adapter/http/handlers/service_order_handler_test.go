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
	"bengkel_manager/internal/adapter/http/middleware"
	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func tenantRouter(tenantID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetClaims(c, entities.Claims{UserID: "user-1", TenantID: tenantID, Role: entities.RoleStaff})
	})
	return r
}

func TestServiceOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"service_fee":"100000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no tenant on token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"customer_name":"Budi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("string money fields are accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services", h.Create)

		now := time.Now().UTC()
		uc.EXPECT().
			Create(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.ServiceOrderInput) (usecase.ServiceOrderDetail, error) {
				if in.ServiceFee != 100000 {
					t.Fatalf("expected service fee 100000, got %v", in.ServiceFee)
				}
				if len(in.Items) != 1 || in.Items[0].Quantity != 2 {
					t.Fatalf("unexpected items: %+v", in.Items)
				}
				return usecase.ServiceOrderDetail{
					Order: entities.ServiceOrder{
						ID:            "svc-1",
						TenantID:      "tenant-1",
						ServiceNumber: "SVC-001",
						CustomerName:  "Budi",
						Status:        entities.OrderStatusQueued,
						ServiceFee:    100000,
						GrandTotal:    220000,
						PaymentStatus: entities.PaymentStatusUnpaid,
						CreatedAt:     now,
						UpdatedAt:     now,
					},
				}, nil
			})

		body := `{"customer_name":"Budi","service_fee":"100000","items":[{"sparepart_id":"sp-1","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["grand_total"] != 220000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("insufficient stock maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := tenantRouter("tenant-1")
		r.POST("/v1/services", h.Create)

		uc.EXPECT().Create(gomock.Any(), "tenant-1", gomock.Any()).Return(usecase.ServiceOrderDetail{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"customer_name":"Budi","items":[{"sparepart_id":"sp-1","quantity":99}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := tenantRouter("tenant-1")
		r.GET("/v1/services/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "tenant-1", "svc-404").Return(usecase.ServiceOrderDetail{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("detail includes line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := tenantRouter("tenant-1")
		r.GET("/v1/services/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "tenant-1", "svc-1").Return(usecase.ServiceOrderDetail{
			Order: entities.ServiceOrder{ID: "svc-1", TenantID: "tenant-1", CustomerName: "Budi", GrandTotal: 220000, PaymentStatus: entities.PaymentStatusUnpaid},
			Items: []entities.ServiceLineItem{
				{ID: "li-1", ServiceID: "svc-1", SparepartID: "sp-1", ItemName: "Oil Filter", Quantity: 2, UnitPrice: 50000, LineTotal: 100000},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Items []map[string]any `json:"items"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Items) != 1 || resp.Items[0]["line_total"] != 100000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapServiceOrderError(t *testing.T) {
	if got := mapServiceOrderError(usecase.ErrInvalidCustomerName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrInsufficientStock); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceOrderError(usecase.ErrSparepartNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
