package repository

import (
	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *models.Client) error
	FindByID(tenantID, id uint) (*models.Client, error)
	FindAll(tenantID uint, search string) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(tenantID, id uint) error
	Count(tenantID uint) (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) FindByID(tenantID, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("tenant_id = ?", tenantID).First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(tenantID uint, search string) ([]models.Client, error) {
	var clients []models.Client
	q := r.db.Where("tenant_id = ?", tenantID)
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	err := q.Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(tenantID, id uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.Client{}, id).Error
}

func (r *clientRepository) Count(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}
