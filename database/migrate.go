package database

import (
	"log"

	"nutriclinic/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Client{},
		&models.Food{},
		&models.Measure{},
		&models.MealPlan{},
		&models.Meal{},
		&models.MealItem{},
		&models.Questionnaire{},
		&models.QuestionnaireResponse{},
		&models.Lead{},
		&models.Appointment{},
		&models.Message{},
		&models.NotificationJob{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
