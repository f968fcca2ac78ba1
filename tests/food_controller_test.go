package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutriclinic/internal/controllers"
	"nutriclinic/internal/models"
	"nutriclinic/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupFoodControllerWithMock() (*controllers.FoodController, *mocks.MockFoodRepository, *mocks.MockMeasureRepository) {
	mockRepo := new(mocks.MockFoodRepository)
	mockMeasureRepo := new(mocks.MockMeasureRepository)
	controller := controllers.NewFoodController(mockRepo, mockMeasureRepo, nil)
	return controller, mockRepo, mockMeasureRepo
}

func TestCreateFood(t *testing.T) {
	tests := []struct {
		name           string
		tenantID       uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockFoodRepository)
		expectedStatus int
		expectedMsg    string
		expectValid    *bool
	}{
		{
			name:     "consistent nutrition facts",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name":           "Pao integral caseiro",
				"category":       "Cereais",
				"energy_kcal":    400,
				"protein_g":      30,
				"carbohydrate_g": 40,
				"lipid_g":        10,
			},
			setupMock: func(m *mocks.MockFoodRepository) {
				m.On("Create", mock.AnythingOfType("*models.Food")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Food created successfully",
			expectValid:    boolPtr(true),
		},
		{
			name:     "inconsistent energy still saves with warning",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name":           "Suplemento misterioso",
				"energy_kcal":    900,
				"protein_g":      10,
				"carbohydrate_g": 10,
				"lipid_g":        5,
			},
			setupMock: func(m *mocks.MockFoodRepository) {
				m.On("Create", mock.AnythingOfType("*models.Food")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Food created successfully",
			expectValid:    boolPtr(false),
		},
		{
			name:     "missing name",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"energy_kcal": 100,
			},
			setupMock:      func(m *mocks.MockFoodRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Food name is required",
		},
		{
			name:     "repository error",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name":        "Arroz",
				"energy_kcal": 128,
			},
			setupMock: func(m *mocks.MockFoodRepository) {
				m.On("Create", mock.AnythingOfType("*models.Food")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _ := setupFoodControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.POST("/foods", controller.CreateFood)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/foods", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			if tt.expectValid != nil {
				data := response["data"].(map[string]interface{})
				check := data["energy_check"].(map[string]interface{})
				assert.Equal(t, *tt.expectValid, check["valid"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestCreateFoodForcesCustomSource(t *testing.T) {
	controller, mockRepo, _ := setupFoodControllerWithMock()

	mockRepo.On("Create", mock.MatchedBy(func(f *models.Food) bool {
		return f.Source == models.FoodSourceCustom && f.TenantID == 1
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, 1))
	router.POST("/foods", controller.CreateFood)

	// The body claims to be a reference food; the controller must not
	// let a tenant inject rows into the global table.
	body, _ := json.Marshal(map[string]interface{}{
		"name":      "Fake reference",
		"source":    "taco",
		"tenant_id": 0,
	})
	req := httptest.NewRequest("POST", "/foods", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestValidateFood(t *testing.T) {
	tests := []struct {
		name          string
		requestBody   map[string]interface{}
		expectedValid bool
	}{
		{
			name: "plausible facts pass",
			requestBody: map[string]interface{}{
				"energy_kcal":    400,
				"protein_g":      30,
				"carbohydrate_g": 40,
				"lipid_g":        10,
			},
			expectedValid: true,
		},
		{
			name: "implausible energy is flagged",
			requestBody: map[string]interface{}{
				"energy_kcal":    900,
				"protein_g":      10,
				"carbohydrate_g": 10,
				"lipid_g":        5,
			},
			expectedValid: false,
		},
		{
			name: "missing energy is treated as incomplete",
			requestBody: map[string]interface{}{
				"protein_g":      10,
				"carbohydrate_g": 10,
				"lipid_g":        5,
			},
			expectedValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, _, _ := setupFoodControllerWithMock()

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, 1))
			router.POST("/foods/validate", controller.ValidateFood)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/foods/validate", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			data := response["data"].(map[string]interface{})
			assert.Equal(t, tt.expectedValid, data["valid"])
		})
	}
}

func TestSearchFoods(t *testing.T) {
	tests := []struct {
		name           string
		tenantID       uint
		query          string
		setupMock      func(*mocks.MockFoodRepository)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:     "successful search",
			tenantID: 1,
			query:    "arroz",
			setupMock: func(m *mocks.MockFoodRepository) {
				foods := []models.Food{
					{ID: 1, TenantID: 0, Name: "Arroz branco cozido", Source: models.FoodSourceReference},
					{ID: 7, TenantID: 1, Name: "Arroz da casa", Source: models.FoodSourceCustom},
				}
				m.On("Search", uint(1), "arroz", "", 50).Return(foods, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:     "empty result",
			tenantID: 1,
			query:    "quinoa",
			setupMock: func(m *mocks.MockFoodRepository) {
				m.On("Search", uint(1), "quinoa", "", 50).Return([]models.Food{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:     "repository error",
			tenantID: 1,
			query:    "arroz",
			setupMock: func(m *mocks.MockFoodRepository) {
				m.On("Search", uint(1), "arroz", "", 50).Return([]models.Food{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _ := setupFoodControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.GET("/foods", controller.SearchFoods)

			req := httptest.NewRequest("GET", "/foods?q="+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)

				data := response["data"].([]interface{})
				assert.Len(t, data, tt.expectedCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateFoodRejectsReferenceFood(t *testing.T) {
	controller, mockRepo, _ := setupFoodControllerWithMock()

	reference := &models.Food{ID: 1, TenantID: 0, Name: "Arroz branco cozido", Source: models.FoodSourceReference}
	mockRepo.On("FindByID", uint(1), uint(1)).Return(reference, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, 1))
	router.PUT("/foods/:id", controller.UpdateFood)

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "Arroz adulterado",
		"energy_kcal": 1,
	})
	req := httptest.NewRequest("PUT", "/foods/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetMeasures(t *testing.T) {
	controller, _, mockMeasureRepo := setupFoodControllerWithMock()

	measures := []models.Measure{
		{ID: 1, FoodID: 3, MeasureName: "100 gramas", Grams: 100},
		{ID: 2, FoodID: 3, MeasureName: "colher de sopa", Grams: 15, IsDefault: true},
	}
	mockMeasureRepo.On("FindByFoodID", uint(3)).Return(measures, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, 1))
	router.GET("/foods/:id/measures", controller.GetMeasures)

	req := httptest.NewRequest("GET", "/foods/3/measures", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	mockMeasureRepo.AssertExpectations(t)
}

func TestCreateMeasure(t *testing.T) {
	tests := []struct {
		name           string
		foodID         string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockFoodRepository, *mocks.MockMeasureRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful creation",
			foodID: "3",
			requestBody: map[string]interface{}{
				"measure_name": "xicara",
				"grams":        120,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				food := &models.Food{ID: 3, TenantID: 1, Name: "Feijao", Source: models.FoodSourceCustom}
				f.On("FindByID", uint(1), uint(3)).Return(food, nil)
				mr.On("Create", mock.AnythingOfType("*models.Measure")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Measure created successfully",
		},
		{
			name:   "zero gram weight rejected",
			foodID: "3",
			requestBody: map[string]interface{}{
				"measure_name": "pitada",
				"grams":        0,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				food := &models.Food{ID: 3, TenantID: 1, Name: "Feijao", Source: models.FoodSourceCustom}
				f.On("FindByID", uint(1), uint(3)).Return(food, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid measure",
		},
		{
			name:   "negative gram weight rejected",
			foodID: "3",
			requestBody: map[string]interface{}{
				"measure_name": "anti-colher",
				"grams":        -15,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				food := &models.Food{ID: 3, TenantID: 1, Name: "Feijao", Source: models.FoodSourceCustom}
				f.On("FindByID", uint(1), uint(3)).Return(food, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid measure",
		},
		{
			name:   "food not found",
			foodID: "999",
			requestBody: map[string]interface{}{
				"measure_name": "xicara",
				"grams":        120,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				f.On("FindByID", uint(1), uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Food not found",
		},
		{
			// Reference-food measures feed every tenant's portion
			// resolution; a tenant must not be able to plant a
			// "100 gramas" entry there.
			name:   "reference food rejected",
			foodID: "3",
			requestBody: map[string]interface{}{
				"measure_name": "100 gramas",
				"grams":        1,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				food := &models.Food{ID: 3, TenantID: 0, Name: "Arroz branco cozido", Source: models.FoodSourceReference}
				f.On("FindByID", uint(1), uint(3)).Return(food, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Food not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, mockMeasureRepo := setupFoodControllerWithMock()
			tt.setupMock(mockRepo, mockMeasureRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, 1))
			router.POST("/foods/:id/measures", controller.CreateMeasure)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/foods/"+tt.foodID+"/measures", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
			mockMeasureRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateMeasure(t *testing.T) {
	customFood := func() *models.Food {
		return &models.Food{ID: 3, TenantID: 1, Name: "Feijao", Source: models.FoodSourceCustom}
	}

	tests := []struct {
		name           string
		foodID         string
		measureID      string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockFoodRepository, *mocks.MockMeasureRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "successful update",
			foodID:    "3",
			measureID: "7",
			requestBody: map[string]interface{}{
				"measure_name": "concha",
				"grams":        80,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				f.On("FindByID", uint(1), uint(3)).Return(customFood(), nil)
				existing := &models.Measure{ID: 7, FoodID: 3, MeasureName: "concha", Grams: 60}
				mr.On("FindByID", uint(7)).Return(existing, nil)
				mr.On("Update", mock.AnythingOfType("*models.Measure")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Measure updated successfully",
		},
		{
			name:      "zero gram weight rejected",
			foodID:    "3",
			measureID: "7",
			requestBody: map[string]interface{}{
				"measure_name": "concha",
				"grams":        0,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				f.On("FindByID", uint(1), uint(3)).Return(customFood(), nil)
				existing := &models.Measure{ID: 7, FoodID: 3, MeasureName: "concha", Grams: 60}
				mr.On("FindByID", uint(7)).Return(existing, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid measure",
		},
		{
			name:      "measure of another food rejected",
			foodID:    "3",
			measureID: "7",
			requestBody: map[string]interface{}{
				"measure_name": "concha",
				"grams":        80,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				f.On("FindByID", uint(1), uint(3)).Return(customFood(), nil)
				other := &models.Measure{ID: 7, FoodID: 99, MeasureName: "colher", Grams: 15}
				mr.On("FindByID", uint(7)).Return(other, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Measure not found",
		},
		{
			name:      "reference food rejected",
			foodID:    "3",
			measureID: "7",
			requestBody: map[string]interface{}{
				"measure_name": "100 gramas",
				"grams":        1,
			},
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				reference := &models.Food{ID: 3, TenantID: 0, Name: "Arroz branco cozido", Source: models.FoodSourceReference}
				f.On("FindByID", uint(1), uint(3)).Return(reference, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Food not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, mockMeasureRepo := setupFoodControllerWithMock()
			tt.setupMock(mockRepo, mockMeasureRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, 1))
			router.PUT("/foods/:id/measures/:measure_id", controller.UpdateMeasure)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/foods/"+tt.foodID+"/measures/"+tt.measureID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
			mockMeasureRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteMeasure(t *testing.T) {
	tests := []struct {
		name           string
		foodID         string
		measureID      string
		setupMock      func(*mocks.MockFoodRepository, *mocks.MockMeasureRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "successful deletion",
			foodID:    "3",
			measureID: "7",
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				food := &models.Food{ID: 3, TenantID: 1, Name: "Feijao", Source: models.FoodSourceCustom}
				f.On("FindByID", uint(1), uint(3)).Return(food, nil)
				existing := &models.Measure{ID: 7, FoodID: 3, MeasureName: "concha", Grams: 60}
				mr.On("FindByID", uint(7)).Return(existing, nil)
				mr.On("Delete", uint(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Measure deleted successfully",
		},
		{
			name:           "invalid measure ID",
			foodID:         "3",
			measureID:      "invalid",
			setupMock:      func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid measure ID",
		},
		{
			name:      "measure not found",
			foodID:    "3",
			measureID: "999",
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				food := &models.Food{ID: 3, TenantID: 1, Name: "Feijao", Source: models.FoodSourceCustom}
				f.On("FindByID", uint(1), uint(3)).Return(food, nil)
				mr.On("FindByID", uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Measure not found",
		},
		{
			name:      "reference food rejected",
			foodID:    "3",
			measureID: "7",
			setupMock: func(f *mocks.MockFoodRepository, mr *mocks.MockMeasureRepository) {
				reference := &models.Food{ID: 3, TenantID: 0, Name: "Arroz branco cozido", Source: models.FoodSourceReference}
				f.On("FindByID", uint(1), uint(3)).Return(reference, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Food not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, mockMeasureRepo := setupFoodControllerWithMock()
			tt.setupMock(mockRepo, mockMeasureRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, 1))
			router.DELETE("/foods/:id/measures/:measure_id", controller.DeleteMeasure)

			req := httptest.NewRequest("DELETE", "/foods/"+tt.foodID+"/measures/"+tt.measureID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
			mockMeasureRepo.AssertExpectations(t)
		})
	}
}
