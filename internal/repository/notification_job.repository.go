package repository

import (
	"time"

	"nutriclinic/internal/models"

	"gorm.io/gorm"
)

type NotificationJobRepository interface {
	Create(job *models.NotificationJob) error
	ClaimPending(limit int) ([]models.NotificationJob, error)
	MarkSent(id uint) error
	MarkFailed(id uint, lastError string) error
}

type notificationJobRepository struct {
	db *gorm.DB
}

func NewNotificationJobRepository(db *gorm.DB) NotificationJobRepository {
	return &notificationJobRepository{db}
}

func (r *notificationJobRepository) Create(job *models.NotificationJob) error {
	return r.db.Create(job).Error
}

// ClaimPending fetches a batch of pending jobs oldest-first. The
// single worker process is the only consumer, so no row locking is
// needed here.
func (r *notificationJobRepository) ClaimPending(limit int) ([]models.NotificationJob, error) {
	var jobs []models.NotificationJob
	if limit <= 0 {
		limit = 20
	}
	err := r.db.Where("status = ?", models.NotificationPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *notificationJobRepository) MarkSent(id uint) error {
	now := time.Now()
	return r.db.Model(&models.NotificationJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  models.NotificationSent,
			"sent_at": &now,
		}).Error
}

func (r *notificationJobRepository) MarkFailed(id uint, lastError string) error {
	return r.db.Model(&models.NotificationJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.NotificationFailed,
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
}
