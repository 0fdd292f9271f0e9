package handlers

import (
	"context"
	"errors"
	"net/http"

	request "autofixpro/internal/adapter/http/dto/request"
	response "autofixpro/internal/adapter/http/dto/response"
	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"
	"autofixpro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTechnicianPayload = pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_INPUT", "Invalid technician payload", http.StatusBadRequest)

// TechnicianHandler handles HTTP requests for the workshop staff roster.

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) Register(c *gin.Context) {
	var payload request.RegisterTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	tech, err := h.usecase.Register(c.Request.Context(), payload.Name, payload.Specialty)
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTechnician(tech))
}

// ListWithWorkload returns every technician with their live open-order count.
func (h *TechnicianHandler) ListWithWorkload(c *gin.Context) {
	loads, err := h.usecase.ListWithWorkload(c.Request.Context())
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicianLoads(loads))
}

func (h *TechnicianHandler) Deactivate(c *gin.Context) {
	h.patchActive(c, h.usecase.Deactivate)
}

func (h *TechnicianHandler) Reactivate(c *gin.Context) {
	h.patchActive(c, h.usecase.Reactivate)
}

func (h *TechnicianHandler) patchActive(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Technician, error),
) {
	tech, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnician(tech))
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTechnicianName), errors.Is(err, usecase.ErrInvalidTechnicianID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
