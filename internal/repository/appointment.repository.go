package repository

import (
	"time"

	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	FindByID(tenantID, id uint) (*models.Appointment, error)
	FindByDateRange(tenantID uint, start, end time.Time) ([]models.Appointment, error)
	FindByClientID(tenantID, clientID uint) ([]models.Appointment, error)
	Update(appt *models.Appointment) error
	Delete(tenantID, id uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db}
}

func (r *appointmentRepository) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

func (r *appointmentRepository) FindByID(tenantID, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.Where("tenant_id = ?", tenantID).First(&appt, id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) FindByDateRange(tenantID uint, start, end time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("tenant_id = ? AND starts_at BETWEEN ? AND ?", tenantID, start, end).
		Order("starts_at ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) FindByClientID(tenantID, clientID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("starts_at DESC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *appointmentRepository) Delete(tenantID, id uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.Appointment{}, id).Error
}
