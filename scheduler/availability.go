package scheduler

import (
	"github.com/glowbook/scheduler/config"
	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/utils"
)

// AvailableSlots projects the day's slot grid for a service, annotated
// available/unavailable. staffID narrows the projection to one staff
// member; empty means any eligible staff. tzOffsetMinutes is the caller's
// offset east of UTC, used only to decide what "today" and "now" mean.
//
// A malformed date, a past date, a date beyond the booking horizon, an
// unknown service, a closed day or an empty candidate staff set all yield
// an empty list, not an error.
func (e *Engine) AvailableSlots(date, serviceID, staffID string, tzOffsetMinutes *int) ([]TimeSlot, error) {
	slots := []TimeSlot{}

	day, err := utils.ParseDate(date)
	if err != nil {
		return slots, nil
	}

	local := e.localNow(tzOffsetMinutes)
	today := utils.FormatDate(local)
	horizon := utils.FormatDate(local.AddDate(0, 0, e.cfg.MaxAdvanceBookingDays))
	// "YYYY-MM-DD" orders lexicographically.
	if date < today || date > horizon {
		return slots, nil
	}

	service, err := e.directory.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return slots, nil
	}

	window, err := e.dayWindow(date, models.DayOfWeek(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if window == nil {
		return slots, nil
	}

	candidates, err := e.candidateStaff(serviceID, staffID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return slots, nil
	}

	// One snapshot of the day's active bookings for every staff member, not
	// one query per candidate.
	bookings, err := e.repo.ListActiveForDate(date)
	if err != nil {
		return nil, err
	}
	byStaff := make(map[string][]bufferedBooking)
	for _, b := range bookings {
		start, err := utils.ParseClock(b.Time)
		if err != nil {
			continue
		}
		byStaff[b.StaffID] = append(byStaff[b.StaffID], bufferedBooking{
			start: start,
			// The buffer extends the booked window so the next booking for
			// the same staff member cannot start right at its end.
			span: b.DurationMinutes + e.cfg.BufferMinutes,
		})
	}

	isToday := date == today
	nowMinutes := local.Hour()*60 + local.Minute()
	weekday := models.DayOfWeek(day.Weekday())

	for start := window.Open; start+service.DurationMinutes <= window.Close; start += e.cfg.SlotDurationMinutes {
		if isToday && start <= nowMinutes {
			continue
		}
		available := false
		for i := range candidates {
			if e.staffFree(&candidates[i], weekday, start, service.DurationMinutes, byStaff) {
				available = true
				break
			}
		}
		slots = append(slots, TimeSlot{Time: utils.FormatClock(start), Available: available})
	}
	return slots, nil
}

type bufferedBooking struct {
	start int
	span  int
}

// dayWindow resolves the open/close window for a date. A holiday entry
// wins over the weekday configuration; nil means closed.
func (e *Engine) dayWindow(date string, weekday models.DayOfWeek) (*config.DayHours, error) {
	holiday, err := e.directory.HolidayByDate(date)
	if err != nil {
		return nil, err
	}
	if holiday != nil {
		if holiday.IsClosed {
			return nil, nil
		}
		if holiday.HasCustomHours() {
			open, err := utils.ParseClock(holiday.OpenTime)
			if err != nil {
				return nil, err
			}
			close, err := utils.ParseClock(holiday.CloseTime)
			if err != nil {
				return nil, err
			}
			return &config.DayHours{Open: open, Close: close}, nil
		}
	}
	return e.cfg.BusinessHours[weekday], nil
}

// candidateStaff resolves who could take the booking: the named member, or
// every active member whose service list is empty or names the service.
func (e *Engine) candidateStaff(serviceID, staffID string) ([]models.StaffMember, error) {
	if staffID != "" {
		staff, err := e.directory.StaffByID(staffID)
		if err != nil {
			return nil, err
		}
		if staff == nil {
			return nil, nil
		}
		return []models.StaffMember{*staff}, nil
	}
	all, err := e.directory.ActiveStaff()
	if err != nil {
		return nil, err
	}
	eligible := make([]models.StaffMember, 0, len(all))
	for _, staff := range all {
		if staff.CanPerform(serviceID) {
			eligible = append(eligible, staff)
		}
	}
	return eligible, nil
}

// staffFree reports whether one staff member can take a slot: their shift
// (when they have a weekly schedule) must contain the whole service window,
// and none of their buffered bookings may overlap it.
func (e *Engine) staffFree(staff *models.StaffMember, weekday models.DayOfWeek, start, duration int, byStaff map[string][]bufferedBooking) bool {
	if staff.HasSchedule() {
		shift := staff.ShiftFor(weekday)
		if shift == nil {
			return false
		}
		shiftStart, err := utils.ParseClock(shift.StartTime)
		if err != nil {
			return false
		}
		shiftEnd, err := utils.ParseClock(shift.EndTime)
		if err != nil {
			return false
		}
		if start < shiftStart || start+duration > shiftEnd {
			return false
		}
	}
	for _, b := range byStaff[staff.ID] {
		if Overlaps(start, duration, b.start, b.span) {
			return false
		}
	}
	return true
}
