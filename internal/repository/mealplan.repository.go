package repository

import (
	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

// MealPlanRepository persists plans together with their meals and
// items. A plan is always written as one unit: the builder holds the
// whole draft in memory and saves it in a single transaction.
type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	FindByID(tenantID, id uint) (*models.MealPlan, error)
	FindByClientID(tenantID, clientID uint) ([]models.MealPlan, error)
	Replace(plan *models.MealPlan) error
	UpdateStatus(tenantID, id uint, status string) error
	Delete(tenantID, id uint) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db}
}

func (r *mealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

func (r *mealPlanRepository) FindByID(tenantID, id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.Where("tenant_id = ?", tenantID).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("meals.position ASC")
		}).
		Preload("Meals.Items").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) FindByClientID(tenantID, clientID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// Replace rewrites a plan's meals and items wholesale. Editing in the
// builder replaces the full structure, so a delete-and-recreate of the
// children inside one transaction keeps the stored plan equal to what
// the user saw.
func (r *mealPlanRepository) Replace(plan *models.MealPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var mealIDs []uint
		if err := tx.Model(&models.Meal{}).
			Where("meal_plan_id = ?", plan.ID).
			Pluck("id", &mealIDs).Error; err != nil {
			return err
		}

		if len(mealIDs) > 0 {
			if err := tx.Where("meal_id IN ?", mealIDs).
				Delete(&models.MealItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("meal_plan_id = ?", plan.ID).
				Delete(&models.Meal{}).Error; err != nil {
				return err
			}
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(plan).Error
	})
}

func (r *mealPlanRepository) UpdateStatus(tenantID, id uint, status string) error {
	return r.db.Model(&models.MealPlan{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("status", status).Error
}

func (r *mealPlanRepository) Delete(tenantID, id uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.MealPlan{}, id).Error
}
