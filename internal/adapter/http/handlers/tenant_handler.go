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

var errInvalidTenantPayload = pkg.NewDomainErrorSimple("INVALID_TENANT_INPUT", "Invalid tenant payload", http.StatusBadRequest)

// TenantHandler covers workshop registration, the owner's settings page and
// the super admin panel.

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

// Register creates a new workshop. New tenants start on the Trial status and
// the Basic package regardless of what the form submits.
func (h *TenantHandler) Register(c *gin.Context) {
	payload, ok := bindTenantSettings(c)
	if !ok {
		return
	}

	tenant, err := h.usecase.Register(c.Request.Context(), payload)
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTenant(tenant))
}

// GetSettings returns the authenticated tenant's profile.
func (h *TenantHandler) GetSettings(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	tenant, err := h.usecase.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

// UpdateSettings saves the owner's settings form. The tax rate set here is
// snapshotted into every service order saved afterwards.
func (h *TenantHandler) UpdateSettings(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindTenantSettings(c)
	if !ok {
		return
	}

	tenant, err := h.usecase.UpdateSettings(c.Request.Context(), tenantID, payload)
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

// List returns every tenant on the platform. Super admin only.
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenants(tenants))
}

// UpdateStatus activates or suspends a tenant. Super admin only.
func (h *TenantHandler) UpdateStatus(c *gin.Context) {
	var payload request.TenantStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.TenantStatus(payload.Status))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

// UpdatePackage changes a tenant's subscription package. Super admin only.
func (h *TenantHandler) UpdatePackage(c *gin.Context) {
	var payload request.TenantPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant, err := h.usecase.UpdatePackage(c.Request.Context(), c.Param("id"), entities.TenantPackage(payload.Package))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func bindTenantSettings(c *gin.Context) (usecase.TenantSettingsInput, bool) {
	var payload request.TenantSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return usecase.TenantSettingsInput{}, false
	}

	return usecase.TenantSettingsInput{
		Name:               payload.Name,
		OwnerName:          payload.OwnerName,
		Email:              payload.Email,
		Phone:              payload.Phone,
		Address:            payload.Address,
		Description:        payload.Description,
		Website:            payload.Website,
		BusinessHoursOpen:  payload.BusinessHoursOpen,
		BusinessHoursClose: payload.BusinessHoursClose,
		ServiceTaxRate:     payload.ServiceTaxRate.Float64(),
		InvoiceTemplate:    payload.InvoiceTemplate,
		EmailNotifications: payload.EmailNotifications,
		SMSNotifications:   payload.SMSNotifications,
	}, true
}

func mapTenantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantName), errors.Is(err, usecase.ErrInvalidTenantEmail),
		errors.Is(err, usecase.ErrInvalidTaxRate), errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenantStatus):
		return pkg.NewDomainErrorSimple("INVALID_TENANT_STATUS", "Invalid tenant status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPackage):
		return pkg.NewDomainErrorSimple("INVALID_PACKAGE", "Invalid tenant package", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
