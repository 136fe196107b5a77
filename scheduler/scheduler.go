package scheduler

import (
	"time"

	"github.com/glowbook/scheduler/config"
	"github.com/glowbook/scheduler/models"
)

// TimeSlot is one candidate start time in an availability projection. It is
// ephemeral and never persisted. Unavailable slots are included so a UI can
// gray them out.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ActiveBooking is the projection of a pending/confirmed appointment the
// availability calculator needs for conflict checks.
type ActiveBooking struct {
	Time            string
	DurationMinutes int
	StaffID         string
}

// Directory exposes the reference data the engine reads. It is maintained
// elsewhere; the engine never writes through it.
type Directory interface {
	ServiceByID(id string) (*models.Service, error)
	StaffByID(id string) (*models.StaffMember, error)
	ActiveStaff() ([]models.StaffMember, error)
	HolidayByDate(date string) (*models.Holiday, error)
}

// AppointmentRepository is the persistence surface the engine writes
// through. Lookups that find nothing return (nil, nil); errors are real
// store failures and pass through the engine untouched.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	ListByEmail(email string) ([]models.Appointment, error)
	ListByDate(date string) ([]models.Appointment, error)
	ListActiveForDate(date string) ([]ActiveBooking, error)
	UpdateStatus(id string, status models.AppointmentStatus) error
	FindDuplicate(email, date, serviceID, slotTime, staffID string) (*models.Appointment, error)
}

// Engine is the scheduling core: availability projection, conflict-safe
// booking and the appointment status state machine.
type Engine struct {
	cfg       *config.Config
	directory Directory
	repo      AppointmentRepository
	locks     SlotLocker

	now func() time.Time
}

func NewEngine(cfg *config.Config, directory Directory, repo AppointmentRepository, locks SlotLocker) *Engine {
	if locks == nil {
		locks = NewMemorySlotLocker()
	}
	return &Engine{
		cfg:       cfg,
		directory: directory,
		repo:      repo,
		locks:     locks,
		now:       time.Now,
	}
}

// localNow returns "now" shifted to the caller's wall clock. With an offset
// (minutes east of UTC) the UTC clock is shifted; without one the server's
// own clock stands in, an acknowledged simplification of offset-only
// timezone handling.
func (e *Engine) localNow(tzOffsetMinutes *int) time.Time {
	if tzOffsetMinutes != nil {
		return e.now().UTC().Add(time.Duration(*tzOffsetMinutes) * time.Minute)
	}
	return e.now()
}

// defaultNow is localNow with the configured fixed offset standing in for a
// missing caller offset; the status engine uses this variant.
func (e *Engine) defaultNow(tzOffsetMinutes *int) time.Time {
	if tzOffsetMinutes == nil {
		offset := e.cfg.DefaultUTCOffsetMinutes
		tzOffsetMinutes = &offset
	}
	return e.now().UTC().Add(time.Duration(*tzOffsetMinutes) * time.Minute)
}
