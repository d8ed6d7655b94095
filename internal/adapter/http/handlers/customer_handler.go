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

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles the customer book and per-customer vehicles.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindCustomer(c)
	if !ok {
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), tenantID, payload)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindCustomer(c)
	if !ok {
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), tenantID, c.Param("id"), payload)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	customer, err := h.usecase.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	customers, err := h.usecase.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) AddVehicle(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindVehicle(c)
	if !ok {
		return
	}

	vehicle, err := h.usecase.AddVehicle(c.Request.Context(), tenantID, c.Param("id"), payload)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *CustomerHandler) UpdateVehicle(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	payload, ok := bindVehicle(c)
	if !ok {
		return
	}

	vehicle, err := h.usecase.UpdateVehicle(c.Request.Context(), tenantID, c.Param("id"), c.Param("vehicle_id"), payload)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *CustomerHandler) DeleteVehicle(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteVehicle(c.Request.Context(), tenantID, c.Param("id"), c.Param("vehicle_id")); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) ListVehicles(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	vehicles, err := h.usecase.ListVehicles(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func bindCustomer(c *gin.Context) (usecase.CustomerInput, bool) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return usecase.CustomerInput{}, false
	}

	return usecase.CustomerInput{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Address: payload.Address,
		Gender:  payload.Gender,
		Notes:   payload.Notes,
	}, true
}

func bindVehicle(c *gin.Context) (usecase.VehicleInput, bool) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return usecase.VehicleInput{}, false
	}

	return usecase.VehicleInput{
		LicensePlate:  payload.LicensePlate,
		Brand:         payload.Brand,
		Model:         payload.Model,
		Year:          payload.Year,
		Color:         payload.Color,
		ChassisNumber: payload.ChassisNumber,
		EngineNumber:  payload.EngineNumber,
		IsPrimary:     payload.IsPrimary,
	}, true
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidCustomerName), errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
