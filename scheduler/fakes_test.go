package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowbook/scheduler/config"
	"github.com/glowbook/scheduler/models"
)

// fakeDirectory is an in-memory Directory for engine tests.
type fakeDirectory struct {
	services map[string]*models.Service
	staff    map[string]*models.StaffMember
	holidays map[string]*models.Holiday
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		services: make(map[string]*models.Service),
		staff:    make(map[string]*models.StaffMember),
		holidays: make(map[string]*models.Holiday),
	}
}

func (d *fakeDirectory) ServiceByID(id string) (*models.Service, error) {
	service, ok := d.services[id]
	if !ok || !service.Active {
		return nil, nil
	}
	return service, nil
}

func (d *fakeDirectory) StaffByID(id string) (*models.StaffMember, error) {
	return d.staff[id], nil
}

func (d *fakeDirectory) ActiveStaff() ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, s := range d.staff {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (d *fakeDirectory) HolidayByDate(date string) (*models.Holiday, error) {
	return d.holidays[date], nil
}

// fakeRepo is an in-memory AppointmentRepository. It is safe for
// concurrent use so the booking race test can hammer it from two
// goroutines.
type fakeRepo struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	createDelay  time.Duration
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: make(map[string]*models.Appointment)}
}

func (r *fakeRepo) Create(a *models.Appointment) error {
	if r.createDelay > 0 {
		time.Sleep(r.createDelay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	stored := *a
	r.appointments[a.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) ListByEmail(email string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.CustomerEmail == email {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByDate(date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListActiveForDate(date string) ([]ActiveBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ActiveBooking
	for _, a := range r.appointments {
		if a.Date == date && a.Status.IsActive() {
			out = append(out, ActiveBooking{
				Time:            a.Time,
				DurationMinutes: a.DurationMinutes,
				StaffID:         a.StaffID,
			})
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.appointments[id]; ok {
		a.Status = status
		a.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeRepo) FindDuplicate(email, date, serviceID, slotTime, staffID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appointments {
		if a.CustomerEmail == email && a.Date == date && a.ServiceID == serviceID &&
			a.Time == slotTime && a.StaffID == staffID && a.Status.IsActive() {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

// testNow is a Monday noon; the test fixtures book Wednesday of the same
// week.
var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

const (
	testDate     = "2026-03-04" // Wednesday
	pastDate     = "2026-02-27"
	serviceCut   = "svc-cut"
	serviceColor = "svc-color"
	staffAva     = "staff-ava"
	staffBen     = "staff-ben"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		SlotDurationMinutes:     60,
		BufferMinutes:           10,
		MaxAdvanceBookingDays:   60,
		DefaultUTCOffsetMinutes: 0,
	}
	for day := 1; day <= 5; day++ {
		cfg.BusinessHours[day] = &config.DayHours{Open: 9 * 60, Close: 17 * 60}
	}
	return cfg
}

// newTestEngine builds an engine over the fakes with two services and two
// unscheduled staff members, clock pinned to testNow.
func newTestEngine() (*Engine, *fakeDirectory, *fakeRepo) {
	dir := newFakeDirectory()
	dir.services[serviceCut] = &models.Service{
		ID: serviceCut, Name: "Haircut", DurationMinutes: 60, Price: 40, Active: true,
	}
	dir.services[serviceColor] = &models.Service{
		ID: serviceColor, Name: "Coloring", DurationMinutes: 120, Price: 90, Active: true,
	}
	dir.staff[staffAva] = &models.StaffMember{
		ID: staffAva, Name: "Ava", Role: "stylist", Active: true,
	}
	dir.staff[staffBen] = &models.StaffMember{
		ID: staffBen, Name: "Ben", Role: "stylist", Active: true,
		ServiceIDs: []string{serviceCut},
	}

	repo := newFakeRepo()
	engine := NewEngine(testConfig(), dir, repo, NewMemorySlotLocker())
	engine.now = func() time.Time { return testNow }
	return engine, dir, repo
}

func validRequest() BookingRequest {
	return BookingRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "Jane.Doe@Example.com",
		CustomerPhone: "+14155551234",
		ServiceID:     serviceCut,
		StaffID:       staffAva,
		Date:          testDate,
		Time:          "10:00",
	}
}
