package scheduler

import (
	"fmt"

	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/utils"
)

// BookingRequest carries a customer's booking submission. TZOffsetMinutes
// is the caller's offset east of UTC, if the client supplied one.
type BookingRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	ServiceID       string `json:"service_id"`
	StaffID         string `json:"staff_id"`
	Date            string `json:"date"` // "YYYY-MM-DD"
	Time            string `json:"time"` // "HH:MM", 24h
	Notes           string `json:"notes"`
	TZOffsetMinutes *int   `json:"tz_offset_minutes"`
}

// Book validates the request, serializes access to the slot, re-verifies
// availability under the lock and persists the appointment in status
// pending. All validation happens before the single persistence call; no
// failure path leaves a partial write behind.
func (e *Engine) Book(req BookingRequest) (*models.Appointment, error) {
	service, staff, err := e.validateBooking(&req)
	if err != nil {
		return nil, err
	}

	// Duplicate guard: the same customer may not hold the same slot twice.
	dup, err := e.repo.FindDuplicate(req.CustomerEmail, req.Date, req.ServiceID, req.Time, req.StaffID)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, newConflict("an identical appointment already exists")
	}

	// Serialize on the exact slot. A held lock means another booking for
	// this slot is in flight; fail fast, the caller may retry.
	lockKey := fmt.Sprintf("%s|%s|%s", req.Date, req.Time, req.StaffID)
	if !e.locks.TryAcquire(lockKey) {
		return nil, newConflict("slot is being booked by someone else, please retry")
	}
	defer e.locks.Release(lockKey)

	// Re-verify under the lock against a fresh snapshot. This is the
	// authoritative check; the client's earlier availability query may be
	// arbitrarily stale.
	slots, err := e.AvailableSlots(req.Date, req.ServiceID, req.StaffID, req.TZOffsetMinutes)
	if err != nil {
		return nil, err
	}
	stillOpen := false
	for _, slot := range slots {
		if slot.Time == req.Time {
			stillOpen = slot.Available
			break
		}
	}
	if !stillOpen {
		return nil, newConflict("time slot is no longer available")
	}

	appointment := &models.Appointment{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		StaffID:         staff.ID,
		StaffName:       staff.Name,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: service.DurationMinutes,
		Status:          models.StatusPending,
		Notes:           req.Notes,
	}
	if err := e.repo.Create(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// validateBooking runs every field and directory check, normalizes the
// request in place and resolves the service and staff records whose names
// get snapshotted onto the appointment.
func (e *Engine) validateBooking(req *BookingRequest) (*models.Service, *models.StaffMember, error) {
	if err := utils.ValidateName(req.CustomerName); err != nil {
		return nil, nil, newValidation("%s", err)
	}
	req.CustomerEmail = utils.NormalizeEmail(req.CustomerEmail)
	if err := utils.ValidateEmail(req.CustomerEmail); err != nil {
		return nil, nil, newValidation("%s", err)
	}
	if err := utils.ValidatePhone(req.CustomerPhone); err != nil {
		return nil, nil, newValidation("%s", err)
	}

	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, nil, newValidation("%s", err)
	}
	if _, err := utils.ParseClock(req.Time); err != nil {
		return nil, nil, newValidation("%s", err)
	}

	local := e.localNow(req.TZOffsetMinutes)
	today := utils.FormatDate(local)
	if req.Date < today {
		return nil, nil, newValidation("date is in the past")
	}
	if req.Date > utils.FormatDate(local.AddDate(0, 0, e.cfg.MaxAdvanceBookingDays)) {
		return nil, nil, newValidation("date is more than %d days ahead", e.cfg.MaxAdvanceBookingDays)
	}

	window, err := e.dayWindow(req.Date, models.DayOfWeek(day.Weekday()))
	if err != nil {
		return nil, nil, err
	}
	if window == nil {
		return nil, nil, newValidation("business is closed on %s", req.Date)
	}

	service, err := e.directory.ServiceByID(req.ServiceID)
	if err != nil {
		return nil, nil, err
	}
	if service == nil {
		return nil, nil, newNotFound("service %s not found", req.ServiceID)
	}
	staff, err := e.directory.StaffByID(req.StaffID)
	if err != nil {
		return nil, nil, err
	}
	if staff == nil {
		return nil, nil, newNotFound("staff member %s not found", req.StaffID)
	}
	if !staff.CanPerform(service.ID) {
		return nil, nil, newValidation("staff member %s does not perform %s", staff.Name, service.Name)
	}
	return service, staff, nil
}
