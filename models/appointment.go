package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no-show"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsActive reports whether the status still counts toward slot conflicts.
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether the status allows no further transitions.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusNoShow || s == StatusCancelled
}

// Appointment is the booked record. ServiceName and StaffName are copied
// from the directory at booking time so later renames do not rewrite
// history. Date and Time are wall-clock values with no timezone attached.
type Appointment struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email" gorm:"index"`
	CustomerPhone   string            `json:"customer_phone"`
	ServiceID       string            `json:"service_id"`
	ServiceName     string            `json:"service_name"`
	StaffID         string            `json:"staff_id" gorm:"index"`
	StaffName       string            `json:"staff_name"`
	Date            string            `json:"date" gorm:"index"` // "YYYY-MM-DD"
	Time            string            `json:"time"`              // "HH:MM", 24h
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
