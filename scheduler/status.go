package scheduler

import (
	"time"

	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/utils"
)

// allowedTransitions is the appointment lifecycle. Completed, no-show and
// cancelled are terminal.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted, models.StatusNoShow},
}

func transitionAllowed(from, to models.AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

var knownStatuses = map[models.AppointmentStatus]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
	models.StatusCompleted: true,
	models.StatusNoShow:    true,
	models.StatusCancelled: true,
}

// UpdateStatus moves an appointment through the lifecycle state machine.
// Confirmed, completed and no-show record an outcome after the fact, so
// they require the scheduled start to have already passed on the caller's
// clock (offset east of UTC, or the configured default offset); only
// cancelled may target a future appointment.
func (e *Engine) UpdateStatus(id string, to models.AppointmentStatus, tzOffsetMinutes *int) (*models.Appointment, error) {
	if !knownStatuses[to] {
		return nil, newValidation("unknown status %q", to)
	}
	appointment, err := e.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, newNotFound("appointment %s not found", id)
	}
	if !transitionAllowed(appointment.Status, to) {
		return nil, newState("cannot transition appointment from %s to %s", appointment.Status, to)
	}
	if to != models.StatusCancelled && !e.hasStarted(appointment, tzOffsetMinutes) {
		return nil, newState("cannot mark appointment %s before its scheduled time", to)
	}

	if err := e.repo.UpdateStatus(id, to); err != nil {
		return nil, err
	}
	appointment.Status = to
	return appointment, nil
}

// Cancel is the customer-facing cancel-by-id operation. Unlike a status
// update to cancelled it refuses appointments whose scheduled time has
// already elapsed, so a stale UI cannot cancel history.
func (e *Engine) Cancel(id string) (*models.Appointment, error) {
	appointment, err := e.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, newNotFound("appointment %s not found", id)
	}
	if !transitionAllowed(appointment.Status, models.StatusCancelled) {
		return nil, newState("cannot transition appointment from %s to %s", appointment.Status, models.StatusCancelled)
	}
	if e.hasStarted(appointment, nil) {
		return nil, newState("cannot cancel an appointment whose time has already passed")
	}

	if err := e.repo.UpdateStatus(id, models.StatusCancelled); err != nil {
		return nil, err
	}
	appointment.Status = models.StatusCancelled
	return appointment, nil
}

// hasStarted compares the appointment's wall-clock start against "now" on
// the caller's clock. A missing offset falls back to the configured default
// offset rather than the server clock.
func (e *Engine) hasStarted(appointment *models.Appointment, tzOffsetMinutes *int) bool {
	day, err := utils.ParseDate(appointment.Date)
	if err != nil {
		return false
	}
	minutes, err := utils.ParseClock(appointment.Time)
	if err != nil {
		return false
	}
	start := day.Add(time.Duration(minutes) * time.Minute)
	local := e.defaultNow(tzOffsetMinutes)
	// Compare wall clocks: rebuild "now" in the same zone-less frame as the
	// stored date and time.
	now := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), 0, 0, time.UTC)
	return now.After(start)
}
