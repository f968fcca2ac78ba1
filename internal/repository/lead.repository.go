package repository

import (
	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	FindByID(tenantID, id uint) (*models.Lead, error)
	FindAll(tenantID uint, status string) ([]models.Lead, error)
	Update(lead *models.Lead) error
	UpdateStatus(tenantID, id uint, status string) error
	Delete(tenantID, id uint) error
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db}
}

func (r *leadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepository) FindByID(tenantID, id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.Where("tenant_id = ?", tenantID).First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) FindAll(tenantID uint, status string) ([]models.Lead, error) {
	var leads []models.Lead
	q := r.db.Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *leadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

func (r *leadRepository) UpdateStatus(tenantID, id uint, status string) error {
	return r.db.Model(&models.Lead{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("status", status).Error
}

func (r *leadRepository) Delete(tenantID, id uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.Lead{}, id).Error
}
