package repository

import (
	"time"

	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type QuestionnaireRepository interface {
	Create(q *models.Questionnaire) error
	FindByID(tenantID, id uint) (*models.Questionnaire, error)
	FindAll(tenantID uint) ([]models.Questionnaire, error)
	Update(q *models.Questionnaire) error
	Delete(tenantID, id uint) error

	CreateResponse(resp *models.QuestionnaireResponse) error
	FindResponseByID(tenantID, id uint) (*models.QuestionnaireResponse, error)
	FindResponsesByClientID(tenantID, clientID uint) ([]models.QuestionnaireResponse, error)
	SubmitResponse(tenantID, id uint, answers string) error
}

type questionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db}
}

func (r *questionnaireRepository) Create(q *models.Questionnaire) error {
	return r.db.Create(q).Error
}

func (r *questionnaireRepository) FindByID(tenantID, id uint) (*models.Questionnaire, error) {
	var q models.Questionnaire
	err := r.db.Where("tenant_id = ?", tenantID).First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionnaireRepository) FindAll(tenantID uint) ([]models.Questionnaire, error) {
	var qs []models.Questionnaire
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&qs).Error
	return qs, err
}

func (r *questionnaireRepository) Update(q *models.Questionnaire) error {
	return r.db.Save(q).Error
}

func (r *questionnaireRepository) Delete(tenantID, id uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.Questionnaire{}, id).Error
}

func (r *questionnaireRepository) CreateResponse(resp *models.QuestionnaireResponse) error {
	return r.db.Create(resp).Error
}

func (r *questionnaireRepository) FindResponseByID(tenantID, id uint) (*models.QuestionnaireResponse, error) {
	var resp models.QuestionnaireResponse
	err := r.db.Where("tenant_id = ?", tenantID).First(&resp, id).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *questionnaireRepository) FindResponsesByClientID(tenantID, clientID uint) ([]models.QuestionnaireResponse, error) {
	var resps []models.QuestionnaireResponse
	err := r.db.Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("created_at DESC").
		Find(&resps).Error
	return resps, err
}

func (r *questionnaireRepository) SubmitResponse(tenantID, id uint, answers string) error {
	now := time.Now()
	return r.db.Model(&models.QuestionnaireResponse{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(map[string]interface{}{
			"answers":      answers,
			"status":       models.ResponseStatusSubmitted,
			"submitted_at": &now,
		}).Error
}
