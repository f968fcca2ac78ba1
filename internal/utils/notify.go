package utils

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
)

// EnqueueNotification records an outbound notification for the worker
// to deliver. A failure to enqueue is logged but never fails the
// originating request.
func EnqueueNotification(repo repository.NotificationJobRepository, tenantID uint, kind string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s notification payload: %v", kind, err)
		return
	}

	job := &models.NotificationJob{
		TenantID:      tenantID,
		CorrelationID: uuid.NewString(),
		Kind:          kind,
		Payload:       string(body),
		Status:        models.NotificationPending,
	}

	if err := repo.Create(job); err != nil {
		log.Printf("Failed to enqueue %s notification: %v", kind, err)
	}
}
