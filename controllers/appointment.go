package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/scheduler"
	"github.com/glowbook/scheduler/utils"
)

// CreateAppointment books a slot.
// POST /appointments
func CreateAppointment(c *fiber.Ctx) error {
	var req scheduler.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	appointment, err := engine.Book(req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointment returns one appointment by id.
// GET /appointments/:id
func GetAppointment(c *fiber.Ctx) error {
	appointment, err := engine.GetAppointment(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointment)
}

// ListAppointments lists appointments by customer email or by date.
// GET /appointments?email=... | GET /appointments?date=YYYY-MM-DD
func ListAppointments(c *fiber.Ctx) error {
	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case c.Query("email") != "":
		appointments, err = engine.AppointmentsByEmail(c.Query("email"))
	case c.Query("date") != "":
		appointments, err = engine.AppointmentsByDate(c.Query("date"))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "email or date query parameter is required",
		})
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// UpdateAppointmentStatus moves an appointment through the lifecycle.
// PATCH /appointments/:id/status
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	var body struct {
		Status          models.AppointmentStatus `json:"status"`
		TZOffsetMinutes *int                     `json:"tz_offset_minutes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	appointment, err := engine.UpdateStatus(c.Params("id"), body.Status, body.TZOffsetMinutes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"appointment": appointment,
	})
}

// CancelAppointment cancels an upcoming appointment.
// DELETE /appointments/:id
func CancelAppointment(c *fiber.Ctx) error {
	appointment, err := engine.Cancel(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"appointment": appointment,
	})
}

// tzOffsetFromQuery is shared by handlers that accept ?tz_offset=minutes.
func tzOffsetFromQuery(c *fiber.Ctx) (*int, error) {
	raw := c.Query("tz_offset")
	if raw == "" {
		return nil, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &offset, nil
}
