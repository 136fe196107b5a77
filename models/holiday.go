package models

import (
	"time"
)

// Holiday overrides the weekday hours for a single date. IsClosed wins over
// any custom hours; otherwise OpenTime/CloseTime, when both set, replace
// the configured hours for that date only.
type Holiday struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      string    `json:"date" gorm:"uniqueIndex"` // "YYYY-MM-DD"
	Name      string    `json:"name"`
	IsClosed  bool      `json:"is_closed"`
	OpenTime  string    `json:"open_time,omitempty"`  // "HH:MM", optional
	CloseTime string    `json:"close_time,omitempty"` // "HH:MM", optional
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCustomHours reports whether the holiday replaces the weekday hours
// rather than closing the business.
func (h *Holiday) HasCustomHours() bool {
	return !h.IsClosed && h.OpenTime != "" && h.CloseTime != ""
}
