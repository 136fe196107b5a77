package models

import (
	"time"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// StaffShift is one weekday entry of a staff member's weekly schedule.
type StaffShift struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StaffID   string    `json:"staff_id" gorm:"index"`
	DayOfWeek DayOfWeek `json:"day_of_week"`
	StartTime string    `json:"start_time"` // "HH:MM", 24h
	EndTime   string    `json:"end_time"`   // "HH:MM", 24h
}

// StaffMember is reference data. An empty ServiceIDs list means the member
// may perform every service. A member with no Schedule rows at all follows
// the full business hours; a member with a schedule is off on any weekday
// the schedule does not mention.
type StaffMember struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	ServiceIDs []string     `json:"service_ids" gorm:"serializer:json"`
	Active     bool         `json:"active" gorm:"default:true"`
	Schedule   []StaffShift `json:"schedule,omitempty" gorm:"foreignKey:StaffID"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// ShiftFor returns the schedule entry for the given weekday, or nil when
// the member is off that day. Callers must only rely on it when a schedule
// exists at all.
func (s *StaffMember) ShiftFor(day DayOfWeek) *StaffShift {
	for i := range s.Schedule {
		if s.Schedule[i].DayOfWeek == day {
			return &s.Schedule[i]
		}
	}
	return nil
}

// HasSchedule reports whether the member carries an explicit weekly
// schedule.
func (s *StaffMember) HasSchedule() bool {
	return len(s.Schedule) > 0
}

// CanPerform reports whether the member may perform the given service.
func (s *StaffMember) CanPerform(serviceID string) bool {
	if len(s.ServiceIDs) == 0 {
		return true
	}
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
