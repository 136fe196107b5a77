package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/scheduler/utils"
)

// GetAvailability returns the slot grid for a date and service, optionally
// narrowed to one staff member.
// GET /availability?date=YYYY-MM-DD&service_id=...&staff_id=...&tz_offset=...
func GetAvailability(c *fiber.Ctx) error {
	date := c.Query("date")
	serviceID := c.Query("service_id")
	if date == "" || serviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date and service_id are required",
		})
	}

	tzOffset, err := tzOffsetFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "tz_offset must be a number of minutes",
		})
	}

	slots, err := engine.AvailableSlots(date, serviceID, c.Query("staff_id"), tzOffset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"date":  date,
		"slots": slots,
	})
}
