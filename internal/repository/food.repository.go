package repository

import (
	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

// FoodRepository reads both the global reference table (tenant_id 0)
// and the tenant's own custom foods; writes are custom-food only.
type FoodRepository interface {
	Create(food *models.Food) error
	FindByID(tenantID, id uint) (*models.Food, error)
	Search(tenantID uint, query, category string, limit int) ([]models.Food, error)
	Update(food *models.Food) error
	Delete(tenantID, id uint) error
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db}
}

func (r *foodRepository) Create(food *models.Food) error {
	return r.db.Create(food).Error
}

func (r *foodRepository) FindByID(tenantID, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.Where("tenant_id IN (0, ?)", tenantID).
		Preload("Measures").
		First(&food, id).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) Search(tenantID uint, query, category string, limit int) ([]models.Food, error) {
	var foods []models.Food
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := r.db.Where("tenant_id IN (0, ?)", tenantID)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	err := q.Order("name ASC").Limit(limit).Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Update(food *models.Food) error {
	return r.db.Save(food).Error
}

func (r *foodRepository) Delete(tenantID, id uint) error {
	// Reference foods are global and immutable; only the owning
	// tenant's custom entries can be removed.
	return r.db.Where("tenant_id = ? AND source = ?", tenantID, models.FoodSourceCustom).
		Delete(&models.Food{}, id).Error
}
