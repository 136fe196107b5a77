package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/scheduler/controllers"
)

// SetupAvailabilityRoutes configures the availability and dashboard routes
func SetupAvailabilityRoutes(app *fiber.App) {
	app.Get("/availability", controllers.GetAvailability)
	app.Get("/dashboard/overview", controllers.GetDashboardOverview)
}
