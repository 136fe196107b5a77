package directory

import (
	"errors"

	"gorm.io/gorm"

	"github.com/glowbook/scheduler/models"
)

// Directory is the gorm-backed read surface over the reference data
// (services, staff, holidays) the admin side maintains. The engine only
// reads through it; not-found lookups return (nil, nil).
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) ServiceByID(id string) (*models.Service, error) {
	var service models.Service
	err := d.db.First(&service, "id = ? AND active = true", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (d *Directory) ActiveServices() ([]models.Service, error) {
	var services []models.Service
	err := d.db.Where("active = true").
		Order("display_order asc, name asc").
		Find(&services).Error
	return services, err
}

func (d *Directory) StaffByID(id string) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := d.db.Preload("Schedule").First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (d *Directory) ActiveStaff() ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := d.db.Preload("Schedule").
		Where("active = true").
		Order("name asc").
		Find(&staff).Error
	return staff, err
}

func (d *Directory) HolidayByDate(date string) (*models.Holiday, error) {
	var holiday models.Holiday
	err := d.db.First(&holiday, "date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}
