package mocks

import (
	"nutriclinic/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(client *models.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(tenantID, id uint) (*models.Client, error) {
	args := m.Called(tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(tenantID uint, search string) ([]models.Client, error) {
	args := m.Called(tenantID, search)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientRepository) Update(client *models.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(tenantID, id uint) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(tenantID uint) (int64, error) {
	args := m.Called(tenantID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockFoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByID(tenantID, id uint) (*models.Food, error) {
	args := m.Called(tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) Search(tenantID uint, query, category string, limit int) ([]models.Food, error) {
	args := m.Called(tenantID, query, category, limit)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) Update(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(tenantID, id uint) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

// Shared MockMeasureRepository
type MockMeasureRepository struct {
	mock.Mock
}

func (m *MockMeasureRepository) Create(measure *models.Measure) error {
	args := m.Called(measure)
	return args.Error(0)
}

func (m *MockMeasureRepository) FindByFoodID(foodID uint) ([]models.Measure, error) {
	args := m.Called(foodID)
	return args.Get(0).([]models.Measure), args.Error(1)
}

func (m *MockMeasureRepository) FindByID(id uint) (*models.Measure, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Measure), args.Error(1)
}

func (m *MockMeasureRepository) Update(measure *models.Measure) error {
	args := m.Called(measure)
	return args.Error(0)
}

func (m *MockMeasureRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockMealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) FindByID(tenantID, id uint) (*models.MealPlan, error) {
	args := m.Called(tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) FindByClientID(tenantID, clientID uint) ([]models.MealPlan, error) {
	args := m.Called(tenantID, clientID)
	return args.Get(0).([]models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) Replace(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) UpdateStatus(tenantID, id uint, status string) error {
	args := m.Called(tenantID, id, status)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Delete(tenantID, id uint) error {
	args := m.Called(tenantID, id)
	return args.Error(0)
}

// Shared MockNotificationJobRepository
type MockNotificationJobRepository struct {
	mock.Mock
}

func (m *MockNotificationJobRepository) Create(job *models.NotificationJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockNotificationJobRepository) ClaimPending(limit int) ([]models.NotificationJob, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.NotificationJob), args.Error(1)
}

func (m *MockNotificationJobRepository) MarkSent(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNotificationJobRepository) MarkFailed(id uint, lastError string) error {
	args := m.Called(id, lastError)
	return args.Error(0)
}
