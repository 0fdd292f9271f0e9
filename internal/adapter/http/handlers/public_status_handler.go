package handlers

import (
	"net/http"

	response "autofixpro/internal/adapter/http/dto/response"
	"autofixpro/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PublicStatusHandler serves the unauthenticated vehicle status page.

type PublicStatusHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewPublicStatusHandler(uc usecase.IServiceOrderUseCase) *PublicStatusHandler {
	return &PublicStatusHandler{usecase: uc}
}

// VehicleStatus resolves the most recent order for a plate and returns its
// state, progress, and snapshot history. Owner contact data is never exposed.
func (h *PublicStatusHandler) VehicleStatus(c *gin.Context) {
	report, err := h.usecase.VehicleStatusByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicleStatusReport(report))
}
