package routes

import (
	"autofixpro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathTechnicians   = "/technicians"
	PathVehicles      = "/vehicles"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ServiceOrderHandler,
	technicianHandler *handlers.TechnicianHandler,
	vehicleHandler *handlers.VehicleHandler,
	publicStatusHandler *handlers.PublicStatusHandler,
	wsHandler *handlers.WSHandler,
) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/assign", orderHandler.AssignTechnician)
		orders.PUT("/:id/progress", orderHandler.UpdateProgress)
		orders.PUT("/:id/complete", orderHandler.CompleteOrder)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", technicianHandler.Register)
		technicians.GET("", technicianHandler.ListWithWorkload)
		technicians.PUT("/:id/deactivate", technicianHandler.Deactivate)
		technicians.PUT("/:id/reactivate", technicianHandler.Reactivate)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Register)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}

	// Unauthenticated status page for customers.
	rg.GET("/public/vehicle-status/:plate", publicStatusHandler.VehicleStatus)

	// Realtime subscriptions; identity comes from the middleware.
	rg.GET("/ws", wsHandler.Subscribe)
}
