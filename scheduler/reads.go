package scheduler

import (
	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/utils"
)

// GetAppointment returns one appointment by id.
func (e *Engine) GetAppointment(id string) (*models.Appointment, error) {
	appointment, err := e.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, newNotFound("appointment %s not found", id)
	}
	return appointment, nil
}

// AppointmentsByEmail lists a customer's appointments.
func (e *Engine) AppointmentsByEmail(email string) ([]models.Appointment, error) {
	return e.repo.ListByEmail(utils.NormalizeEmail(email))
}

// AppointmentsByDate lists a day's appointments.
func (e *Engine) AppointmentsByDate(date string) ([]models.Appointment, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, newValidation("%s", err)
	}
	return e.repo.ListByDate(date)
}
