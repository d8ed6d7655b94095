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

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)

// AuthHandler handles registration, login and the profile endpoint.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.Register(c.Request.Context(), usecase.RegisterInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Password: payload.Password,
		Role:     entities.Role(payload.Role),
		TenantID: payload.TenantID,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProfile(profile))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(result))
}

// Me returns the profile behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		return
	}

	profile, err := h.usecase.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidPassword),
		errors.Is(err, usecase.ErrInvalidFullName), errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
