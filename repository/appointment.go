package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/scheduler"
)

var activeStatuses = []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}

// AppointmentRepository is the gorm-backed persistence surface of the
// engine. Not-found lookups return (nil, nil); every other error is a real
// store failure.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *AppointmentRepository) GetByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) ListByEmail(email string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("customer_email = ?", email).
		Order("date asc, time asc").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepository) ListByDate(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("date = ?", date).
		Order("time asc").
		Find(&appointments).Error
	return appointments, err
}

// ListActiveForDate fetches the slim conflict projection for a whole day in
// one query, so the availability calculator never queries per staff member.
func (r *AppointmentRepository) ListActiveForDate(date string) ([]scheduler.ActiveBooking, error) {
	var bookings []scheduler.ActiveBooking
	err := r.db.Model(&models.Appointment{}).
		Select("time", "duration_minutes", "staff_id").
		Where("date = ? AND status IN ?", date, activeStatuses).
		Find(&bookings).Error
	return bookings, err
}

func (r *AppointmentRepository) UpdateStatus(id string, status models.AppointmentStatus) error {
	return r.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// FindDuplicate looks for an active appointment with the identical
// (email, date, service, time, staff) tuple.
func (r *AppointmentRepository) FindDuplicate(email, date, serviceID, slotTime, staffID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Where(
		"customer_email = ? AND date = ? AND service_id = ? AND time = ? AND staff_id = ? AND status IN ?",
		email, date, serviceID, slotTime, staffID, activeStatuses,
	).First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
