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

var errInvalidSparepartPayload = pkg.NewDomainErrorSimple("INVALID_SPAREPART_INPUT", "Invalid sparepart payload", http.StatusBadRequest)

// SparepartHandler handles the inventory catalog.

type SparepartHandler struct {
	usecase usecase.ISparepartUseCase
}

func NewSparepartHandler(uc usecase.ISparepartUseCase) *SparepartHandler {
	return &SparepartHandler{usecase: uc}
}

func (h *SparepartHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindSparepart(c)
	if !ok {
		return
	}

	sparepart, err := h.usecase.Create(c.Request.Context(), tenantID, payload)
	if err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSparepart(sparepart))
}

func (h *SparepartHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindSparepart(c)
	if !ok {
		return
	}

	sparepart, err := h.usecase.Update(c.Request.Context(), tenantID, c.Param("id"), payload)
	if err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSparepart(sparepart))
}

func (h *SparepartHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SparepartHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	sparepart, err := h.usecase.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSparepart(sparepart))
}

func (h *SparepartHandler) List(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	spareparts, err := h.usecase.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSpareparts(spareparts))
}

// ListLowStock returns items at or below their minimum stock level.
func (h *SparepartHandler) ListLowStock(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	spareparts, err := h.usecase.ListLowStock(c.Request.Context(), tenantID)
	if err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSpareparts(spareparts))
}

// Restock adds received stock to an item. Quantity must be positive;
// downward corrections go through Update.
func (h *SparepartHandler) Restock(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSparepartPayload.HTTPStatus, errInvalidSparepartPayload.ToHTTPError())
		return
	}

	sparepart, err := h.usecase.Restock(c.Request.Context(), tenantID, c.Param("id"), payload.Quantity)
	if err != nil {
		appErr := mapSparepartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSparepart(sparepart))
}

func bindSparepart(c *gin.Context) (usecase.SparepartInput, bool) {
	var payload request.SparepartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSparepartPayload.HTTPStatus, errInvalidSparepartPayload.ToHTTPError())
		return usecase.SparepartInput{}, false
	}

	return usecase.SparepartInput{
		Code:          payload.Code,
		Name:          payload.Name,
		Category:      payload.Category,
		Brand:         payload.Brand,
		Description:   payload.Description,
		Stock:         payload.Stock,
		MinimumStock:  payload.MinimumStock,
		PurchasePrice: payload.PurchasePrice.Float64(),
		SellingPrice:  payload.SellingPrice.Float64(),
		Location:      payload.Location,
		Supplier:      payload.Supplier,
	}, true
}

func mapSparepartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSparepartID), errors.Is(err, usecase.ErrInvalidSparepartName),
		errors.Is(err, usecase.ErrInvalidSparepartCode), errors.Is(err, usecase.ErrInvalidStock),
		errors.Is(err, usecase.ErrNegativePrice), errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRestockQty):
		return pkg.NewDomainErrorSimple("INVALID_RESTOCK_QUANTITY", "Restock quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSparepartNotFound):
		return pkg.NewDomainErrorSimple("SPAREPART_NOT_FOUND", "Sparepart not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
