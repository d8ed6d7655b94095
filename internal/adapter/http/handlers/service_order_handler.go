package handlers

import (
	"errors"
	"net/http"

	request "bengkel_manager/internal/adapter/http/dto/request"
	response "bengkel_manager/internal/adapter/http/dto/response"
	"bengkel_manager/internal/usecase"
	"bengkel_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)

// ServiceOrderHandler handles service order intake, edits and the detail
// view backing the printable invoice.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// Create opens a service order. The cost snapshot (parts total, fee, tax,
// grand total) is computed and persisted here.
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.Create(c.Request.Context(), tenantID, payload.ToInput())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrderDetail(detail))
}

// Update edits an order: line items are replaced wholesale and the cost
// snapshot is recomputed against the tenant's current tax rate.
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.Update(c.Request.Context(), tenantID, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrderDetail(detail))
}

func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	detail, err := h.usecase.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrderDetail(detail))
}

func (h *ServiceOrderHandler) List(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerName), errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Line item quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough sparepart stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSparepartNotFound):
		return pkg.NewDomainErrorSimple("SPAREPART_NOT_FOUND", "Sparepart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
