package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/scheduler/scheduler"
	"github.com/glowbook/scheduler/utils"
)

var engine *scheduler.Engine

// Setup wires the scheduling engine into the controllers. Must be called
// before any route is served.
func Setup(e *scheduler.Engine) {
	engine = e
}

// fail maps an engine error onto an HTTP response. The controllers carry no
// validation of their own; every check lives in the engine.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch scheduler.ErrorKind(err) {
	case scheduler.KindValidation:
		status = fiber.StatusBadRequest
	case scheduler.KindNotFound:
		status = fiber.StatusNotFound
	case scheduler.KindConflict:
		status = fiber.StatusConflict
	case scheduler.KindState:
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(utils.ErrorResponse{
		Message: err.Error(),
	})
}
