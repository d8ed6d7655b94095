package handlers

import (
	"errors"
	"net/http"

	request "bengkel_manager/internal/adapter/http/dto/request"
	response "bengkel_manager/internal/adapter/http/dto/response"
	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase"
	"bengkel_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles settlement against service orders.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment settles part or all of a service order's balance and returns
// the receipt: the stored payment plus the order's resulting payment status,
// cumulative total, remaining balance and cash change due.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.RecordPayment(c.Request.Context(), tenantID, c.Param("id"), usecase.RecordPaymentInput{
		Amount:       payload.Amount.Float64(),
		Method:       entities.PaymentMethod(payload.PaymentMethod),
		CashReceived: payload.CashReceived.Float64(),
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSettlement(result))
}

// ListByService returns the payment history of one order, oldest first.
func (h *PaymentHandler) ListByService(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payments, err := h.usecase.ListByServiceID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payment, err := h.usecase.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientCash):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_CASH", "Cash received is less than the payment amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountExceedsBalance):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_BALANCE", "Payment exceeds the outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Service order is already fully paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
