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

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func addAuthMiddleware(tenantID, userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("tenant_id", tenantID)
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupClientControllerWithMock() (*controllers.ClientController, *mocks.MockClientRepository) {
	mockRepo := new(mocks.MockClientRepository)
	controller := controllers.NewClientController(mockRepo)
	return controller, mockRepo
}

func TestNewClientController(t *testing.T) {
	mockRepo := new(mocks.MockClientRepository)
	controller := controllers.NewClientController(mockRepo)

	assert.NotNil(t, controller)
}

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name           string
		tenantID       uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "successful creation",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name":  "Maria Souza",
				"email": "maria@example.com",
				"phone": "+55 11 91234-5678",
			},
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("Create", mock.AnythingOfType("*models.Client")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Client created successfully",
		},
		{
			name:     "missing name",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"email": "maria@example.com",
			},
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Client name is required",
		},
		{
			name:           "invalid JSON",
			tenantID:       1,
			requestBody:    nil,
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:     "repository error",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name": "Maria Souza",
			},
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("Create", mock.AnythingOfType("*models.Client")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.POST("/clients", controller.CreateClient)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/clients", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateClientUnauthorized(t *testing.T) {
	controller, _ := setupClientControllerWithMock()
	router := setupTestRouter()
	router.POST("/clients", controller.CreateClient)

	body, _ := json.Marshal(map[string]interface{}{"name": "Maria Souza"})

	req := httptest.NewRequest("POST", "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Missing tenant scope", response["message"])
}

func TestGetClients(t *testing.T) {
	tests := []struct {
		name           string
		tenantID       uint
		search         string
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "successful retrieval",
			tenantID: 1,
			setupMock: func(m *mocks.MockClientRepository) {
				clients := []models.Client{
					{ID: 1, TenantID: 1, Name: "Ana Lima"},
					{ID: 2, TenantID: 1, Name: "Maria Souza"},
				}
				m.On("FindAll", uint(1), "").Return(clients, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Clients retrieved successfully",
		},
		{
			name:     "search filter forwarded",
			tenantID: 1,
			search:   "maria",
			setupMock: func(m *mocks.MockClientRepository) {
				clients := []models.Client{
					{ID: 2, TenantID: 1, Name: "Maria Souza"},
				}
				m.On("FindAll", uint(1), "maria").Return(clients, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Clients retrieved successfully",
		},
		{
			name:     "repository error",
			tenantID: 1,
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindAll", uint(1), "").Return([]models.Client{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve clients",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.GET("/clients", controller.GetClients)

			url := "/clients"
			if tt.search != "" {
				url += "?search=" + tt.search
			}

			req := httptest.NewRequest("GET", url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetClientByID(t *testing.T) {
	tests := []struct {
		name           string
		clientID       string
		tenantID       uint
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "successful retrieval",
			clientID: "1",
			tenantID: 1,
			setupMock: func(m *mocks.MockClientRepository) {
				client := &models.Client{ID: 1, TenantID: 1, Name: "Maria Souza"}
				m.On("FindByID", uint(1), uint(1)).Return(client, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Client retrieved successfully",
		},
		{
			name:           "invalid client ID",
			clientID:       "invalid",
			tenantID:       1,
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid client ID",
		},
		{
			name:     "client not found",
			clientID: "999",
			tenantID: 1,
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(1), uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Client not found",
		},
		{
			name:     "other tenant's client not visible",
			clientID: "1",
			tenantID: 2,
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(2), uint(1)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Client not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.GET("/clients/:id", controller.GetClientByID)

			req := httptest.NewRequest("GET", "/clients/"+tt.clientID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateClient(t *testing.T) {
	tests := []struct {
		name           string
		clientID       string
		tenantID       uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "successful update",
			clientID: "1",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name":  "Maria Souza",
				"notes": "prefers morning appointments",
			},
			setupMock: func(m *mocks.MockClientRepository) {
				existing := &models.Client{ID: 1, TenantID: 1, Name: "Maria Souza"}
				m.On("FindByID", uint(1), uint(1)).Return(existing, nil)
				m.On("Update", mock.AnythingOfType("*models.Client")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Client updated successfully",
		},
		{
			name:           "invalid client ID",
			clientID:       "invalid",
			tenantID:       1,
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid client ID",
		},
		{
			name:     "client not found",
			clientID: "999",
			tenantID: 1,
			requestBody: map[string]interface{}{
				"name": "Maria Souza",
			},
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(1), uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Client not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.PUT("/clients/:id", controller.UpdateClient)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/clients/"+tt.clientID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateClientKeepsTenantScope(t *testing.T) {
	controller, mockRepo := setupClientControllerWithMock()

	existing := &models.Client{ID: 1, TenantID: 1, Name: "Maria Souza"}
	mockRepo.On("FindByID", uint(1), uint(1)).Return(existing, nil)
	mockRepo.On("Update", mock.MatchedBy(func(c *models.Client) bool {
		return c.TenantID == 1 && c.ID == 1
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, 1))
	router.PUT("/clients/:id", controller.UpdateClient)

	// The body claims another tenant; the controller must overwrite it.
	body, _ := json.Marshal(map[string]interface{}{
		"name":      "Maria Souza",
		"tenant_id": 999,
	})
	req := httptest.NewRequest("PUT", "/clients/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeleteClient(t *testing.T) {
	tests := []struct {
		name           string
		clientID       string
		tenantID       uint
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "successful deletion",
			clientID: "1",
			tenantID: 1,
			setupMock: func(m *mocks.MockClientRepository) {
				existing := &models.Client{ID: 1, TenantID: 1, Name: "Maria Souza"}
				m.On("FindByID", uint(1), uint(1)).Return(existing, nil)
				m.On("Delete", uint(1), uint(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Client deleted successfully",
		},
		{
			name:           "invalid client ID",
			clientID:       "invalid",
			tenantID:       1,
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid client ID",
		},
		{
			name:     "client not found",
			clientID: "999",
			tenantID: 1,
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(1), uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Client not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.tenantID, 1))
			router.DELETE("/clients/:id", controller.DeleteClient)

			req := httptest.NewRequest("DELETE", "/clients/"+tt.clientID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}
