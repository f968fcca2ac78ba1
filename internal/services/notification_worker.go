package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"nutriclinic/internal/models"
	"nutriclinic/internal/mq"
	"nutriclinic/internal/repository"
)

// NotificationWorker drains the notification_jobs table and publishes
// each job to RabbitMQ. Jobs are written by the API handlers (new
// message, appointment booked, questionnaire sent) so the HTTP request
// never blocks on the broker.
type NotificationWorker struct {
	jobRepo   repository.NotificationJobRepository
	publisher *mq.Publisher

	pollInterval time.Duration
	batchSize    int

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

func NewNotificationWorker(jobRepo repository.NotificationJobRepository, publisher *mq.Publisher) *NotificationWorker {
	return &NotificationWorker{
		jobRepo:      jobRepo,
		publisher:    publisher,
		pollInterval: 5 * time.Second,
		batchSize:    20,
		stopChan:     make(chan struct{}),
	}
}

func (w *NotificationWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop()
	log.Println("Notification worker started")
}

func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()
	log.Println("Notification worker stopped")
}

func (w *NotificationWorker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *NotificationWorker) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.drain()
		}
	}
}

func (w *NotificationWorker) drain() {
	jobs, err := w.jobRepo.ClaimPending(w.batchSize)
	if err != nil {
		log.Printf("Notification worker: failed to fetch pending jobs: %v", err)
		return
	}

	for _, job := range jobs {
		if err := w.dispatch(&job); err != nil {
			log.Printf("Notification worker: job %d (%s) failed: %v", job.ID, job.Kind, err)
			if markErr := w.jobRepo.MarkFailed(job.ID, err.Error()); markErr != nil {
				log.Printf("Notification worker: failed to mark job %d failed: %v", job.ID, markErr)
			}
			continue
		}
		if err := w.jobRepo.MarkSent(job.ID); err != nil {
			log.Printf("Notification worker: failed to mark job %d sent: %v", job.ID, err)
		}
	}
}

func (w *NotificationWorker) dispatch(job *models.NotificationJob) error {
	return w.publisher.Publish(mq.Envelope{
		CorrelationID: job.CorrelationID,
		TenantID:      job.TenantID,
		Kind:          job.Kind,
		Payload:       json.RawMessage(job.Payload),
	})
}
