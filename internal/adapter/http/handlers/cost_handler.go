package handlers

import (
	"errors"
	"net/http"
	"time"

	request "bengkel_manager/internal/adapter/http/dto/request"
	response "bengkel_manager/internal/adapter/http/dto/response"
	"bengkel_manager/internal/usecase"
	"bengkel_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCostPayload = pkg.NewDomainErrorSimple("INVALID_COST_INPUT", "Invalid cost payload", http.StatusBadRequest)

// CostHandler handles operational expense records.

type CostHandler struct {
	usecase usecase.ICostUseCase
}

func NewCostHandler(uc usecase.ICostUseCase) *CostHandler {
	return &CostHandler{usecase: uc}
}

func (h *CostHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindCost(c)
	if !ok {
		return
	}

	cost, err := h.usecase.Create(c.Request.Context(), tenantID, payload)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCost(cost))
}

func (h *CostHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindCost(c)
	if !ok {
		return
	}

	cost, err := h.usecase.Update(c.Request.Context(), tenantID, c.Param("id"), payload)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCost(cost))
}

func (h *CostHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CostHandler) List(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	costs, err := h.usecase.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCosts(costs))
}

func bindCost(c *gin.Context) (usecase.CostInput, bool) {
	var payload request.CostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return usecase.CostInput{}, false
	}

	// The form submits the date as yyyy-mm-dd; an empty field means today.
	var costDate time.Time
	if payload.CostDate != "" {
		parsed, err := time.Parse("2006-01-02", payload.CostDate)
		if err != nil {
			c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
			return usecase.CostInput{}, false
		}
		costDate = parsed
	}

	return usecase.CostInput{
		CostName: payload.CostName,
		Amount:   payload.Amount.Float64(),
		CostDate: costDate,
		Notes:    payload.Notes,
	}, true
}

func mapCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCostID), errors.Is(err, usecase.ErrInvalidCostName),
		errors.Is(err, usecase.ErrNegativeAmount), errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostNotFound):
		return pkg.NewDomainErrorSimple("COST_NOT_FOUND", "Cost not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
