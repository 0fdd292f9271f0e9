package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "autofixpro/internal/adapter/http/dto/request"
	response "autofixpro/internal/adapter/http/dto/response"
	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase"
	"autofixpro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errMissingListFilter   = pkg.NewDomainErrorSimple("MISSING_FILTER", "Provide exactly one of state, technician_id or vehicle_id", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the service order lifecycle.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.VehicleID, payload.ProblemDescription, payload.ResolvePriority())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// AssignTechnician replaces the order's technician with an explicit choice.
func (h *ServiceOrderHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AssignTechnician(c.Request.Context(), c.Param("id"), payload.TechnicianID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// UpdateProgress applies one lifecycle transition to the order.
func (h *ServiceOrderHandler) UpdateProgress(c *gin.Context) {
	var payload request.UpdateOrderStateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AdvanceState(c.Request.Context(), c.Param("id"), payload.ResolveState(), payload.Observations)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) CompleteOrder(c *gin.Context) {
	order, err := h.usecase.CompleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ListOrders serves the three finder queries behind a single route. Exactly
// one filter must be present.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	state := c.Query("state")
	technicianID := c.Query("technician_id")
	vehicleID := c.Query("vehicle_id")

	filters := 0
	for _, f := range []string{state, technicianID, vehicleID} {
		if f != "" {
			filters++
		}
	}
	if filters != 1 {
		c.JSON(errMissingListFilter.HTTPStatus, errMissingListFilter.ToHTTPError())
		return
	}

	var (
		orders []entities.ServiceOrder
		err    error
	)
	switch {
	case state != "":
		orders, err = h.usecase.ListByState(c.Request.Context(), entities.OrderState(strings.ToUpper(strings.TrimSpace(state))))
	case technicianID != "":
		orders, err = h.usecase.ListByTechnician(c.Request.Context(), technicianID)
	default:
		orders, err = h.usecase.ListByVehicle(c.Request.Context(), vehicleID)
	}
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidState),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrMissingProblem),
		errors.Is(err, usecase.ErrInvalidPlate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianInactive):
		return pkg.NewDomainErrorSimple("TECHNICIAN_INACTIVE", "Technician is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoServiceHistory):
		return pkg.NewDomainErrorSimple("NO_SERVICE_HISTORY", "No service history for this vehicle", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
