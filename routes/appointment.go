package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/scheduler/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.ListAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Patch("/:id/status", controllers.UpdateAppointmentStatus)
	appointment.Delete("/:id", controllers.CancelAppointment)
}
