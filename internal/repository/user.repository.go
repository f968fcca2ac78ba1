package repository

import (
	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (ur *UserRepository) CreateTenant(tenant *models.Tenant) error {
	return ur.db.Create(tenant).Error
}

func (ur *UserRepository) CreateUser(user *models.User) error {
	return ur.db.Create(user).Error
}

func (ur *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (ur *UserRepository) GetUserByID(tenantID, id uint) (*models.User, error) {
	var user models.User
	err := ur.db.Where("tenant_id = ?", tenantID).First(&user, id).Error
	return &user, err
}

func (ur *UserRepository) UpdateUser(user *models.User) error {
	return ur.db.Save(user).Error
}

func (ur *UserRepository) PatchUser(tenantID, id uint, data map[string]interface{}) error {
	var user models.User
	if err := ur.db.Where("tenant_id = ?", tenantID).First(&user, id).Error; err != nil {
		return err
	}
	return ur.db.Model(&user).Updates(data).Error
}

func (ur *UserRepository) DeleteUser(tenantID, id uint) error {
	return ur.db.Where("tenant_id = ?", tenantID).Delete(&models.User{}, id).Error
}
