package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"obradiary/internal/model"
	"obradiary/internal/service"
	serviceMocks "obradiary/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/api/", Root())

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "running", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/api/users", CreateUser(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := model.UserCreate{Name: "Joao Silva", Email: "joao@obra.test", Role: model.RoleSiteForeman}
		expected := &model.User{ID: "user_001", Name: in.Name, Email: in.Email, Role: in.Role}
		mockSvc.On("Create", mock.Anything, &in).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, in))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.User
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "user_001", got.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		vErr := &model.ValidationError{Fields: []string{"name", "role"}}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, vErr).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, model.UserCreate{}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, []string{"name", "role"}, body.Error.Fields)
	})
}

func TestGetUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Get("/api/users/:id", GetUser(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "user_001").Return(&model.User{ID: "user_001"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/users/user_001", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "user not found", body.Error.Message)
	})
}

func TestGetObra(t *testing.T) {
	mockSvc := new(serviceMocks.MockObraService)
	app := fiber.New()
	app.Get("/api/obras/:id", GetObra(mockSvc))

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/obras/missing", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "obra not found", body.Error.Message)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "obra_001").Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/obras/obra_001", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	})
}

func TestCreateDiaryEntry(t *testing.T) {
	mockSvc := new(serviceMocks.MockRecordService)
	app := fiber.New()
	app.Post("/api/diary-entries", CreateDiaryEntry(mockSvc))

	in := model.DiaryEntryCreate{
		ObraID:        "obra_001",
		Weather:       "sunny",
		Temperature:   "25C",
		WorkersCount:  12,
		Activities:    "Foundation pouring",
		MaterialsUsed: "concrete",
		EquipmentUsed: "mixer",
	}

	t.Run("passes bearer credential through", func(t *testing.T) {
		expected := &model.DiaryEntry{ID: "entry_001", ObraID: "obra_001", UserID: "user_123"}
		mockSvc.On("CreateDiaryEntry", mock.Anything, "tok-abc", &in).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/diary-entries", jsonBody(t, in))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-abc")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing header yields empty credential", func(t *testing.T) {
		mockSvc.On("CreateDiaryEntry", mock.Anything, "", &in).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/diary-entries", jsonBody(t, in))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDiaryEntries(t *testing.T) {
	mockSvc := new(serviceMocks.MockRecordService)
	app := fiber.New()
	app.Get("/api/diary-entries/obra/:obra_id", ListDiaryEntries(mockSvc))

	entries := []model.DiaryEntry{{ID: "entry_002"}, {ID: "entry_001"}}
	mockSvc.On("ListDiaryEntries", mock.Anything, "obra_001").Return(entries, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/diary-entries/obra/obra_001", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []model.DiaryEntry
	json.NewDecoder(resp.Body).Decode(&got)
	assert.Len(t, got, 2)
	assert.Equal(t, "entry_002", got[0].ID)
}

func TestUpdateMaterialRequestStatus(t *testing.T) {
	mockSvc := new(serviceMocks.MockRecordService)
	app := fiber.New()
	app.Put("/api/material-requests/:id/status", UpdateMaterialRequestStatus(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("UpdateMaterialRequestStatus", mock.Anything, "request_001", "approved").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/material-requests/request_001/status",
			jsonBody(t, map[string]string{"status": "approved"}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Status updated successfully", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("status from query without body", func(t *testing.T) {
		mockSvc.On("UpdateMaterialRequestStatus", mock.Anything, "request_001", "approved").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/material-requests/request_001/status?status=approved", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("body takes precedence over query", func(t *testing.T) {
		mockSvc.On("UpdateMaterialRequestStatus", mock.Anything, "request_001", "rejected").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/material-requests/request_001/status?status=approved",
			jsonBody(t, map[string]string{"status": "rejected"}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty status", func(t *testing.T) {
		vErr := &model.ValidationError{Fields: []string{"status"}}
		mockSvc.On("UpdateMaterialRequestStatus", mock.Anything, "request_001", "").Return(vErr).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/material-requests/request_001/status",
			jsonBody(t, map[string]string{"status": ""}))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/material-requests/request_001/status",
			bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	mockSvc := new(serviceMocks.MockNotificationService)
	app := fiber.New()
	app.Put("/api/notifications/:id/read", MarkNotificationRead(mockSvc))

	mockSvc.On("MarkRead", mock.Anything, "notif_001").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/notifications/notif_001/read", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Notification marked as read", body["message"])
	mockSvc.AssertExpectations(t)
}

func TestDashboardStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	app := fiber.New()
	app.Get("/api/dashboard/stats/:obra_id", DashboardStats(mockSvc))

	stats := &model.DashboardStats{DiaryEntries: 3, Photos: 1, PendingRequests: 2, UnreadNotifications: 5}
	mockSvc.On("Stats", mock.Anything, "obra_001").Return(stats, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats/obra_001", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]int
	json.NewDecoder(resp.Body).Decode(&got)
	assert.Equal(t, 3, got["diary_entries"])
	assert.Equal(t, 2, got["pending_requests"])
	assert.Equal(t, 5, got["unread_notifications"])
}

func TestInitSampleData(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSeedService)
		app := fiber.New()
		app.Post("/api/init-sample-data", InitSampleData(mockSvc, true))

		mockSvc.On("Initialize", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/init-sample-data", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("disabled", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockSeedService)
		app := fiber.New()
		app.Post("/api/init-sample-data", InitSampleData(mockSvc, false))

		req := httptest.NewRequest(http.MethodPost, "/api/init-sample-data", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SEEDING_DISABLED", body.Error.Code)
		mockSvc.AssertNotCalled(t, "Initialize", mock.Anything)
	})
}
