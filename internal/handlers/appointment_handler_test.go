package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"telemind_backend/internal/models"
	"telemind_backend/internal/services/dto"
	"telemind_backend/internal/validator"
	"telemind_backend/pkg/apperrors"
)

type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) Create(req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateAppointmentResponse), args.Error(1)
}

func (m *MockAppointmentService) Confirm(req *dto.ConfirmAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) GetDetails(id string) (*dto.AppointmentDetails, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentDetails), args.Error(1)
}

const (
	testDoctorID      = "2f6b0c9e-0000-4000-8000-000000000002"
	testAppointmentID = "2f6b0c9e-0000-4000-8000-000000000003"
)

func setupAppointmentRouter(svc *MockAppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAppointmentHandler(NewBaseHandler(validator.New()), svc)
	api := router.Group("/api")
	handler.RegisterRoutes(api, fakeAuthMW)
	return router
}

func TestAppointmentHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockAppointmentService)
		router := setupAppointmentRouter(svc)

		svc.On("Create", mock.MatchedBy(func(req *dto.CreateAppointmentRequest) bool {
			return req.DoctorID == testDoctorID && req.UserID == testUserID
		})).Return(&dto.CreateAppointmentResponse{
			Appointment: &models.Appointment{
				BaseModel: models.BaseModel{ID: testAppointmentID},
				Status:    models.AppointmentStatusPending,
			},
			User:   &dto.UserDisplay{FullName: "Amy Carter", Email: "amy@example.com"},
			Doctor: &dto.DoctorDisplay{Name: "Ayesha Rahman", Designation: "Cardiologist"},
		}, nil)

		body := `{"doctorId":"` + testDoctorID + `","userId":"` + testUserID + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "Appointment created successfully", resp["message"])

		data := resp["data"].(map[string]interface{})
		assert.Equal(t, "Amy Carter", data["user"].(map[string]interface{})["fullname"])
		assert.Equal(t, "Ayesha Rahman", data["doctor"].(map[string]interface{})["name"])
	})

	t.Run("malformed ids rejected before service", func(t *testing.T) {
		svc := new(MockAppointmentService)
		router := setupAppointmentRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"doctorId":"abc","userId":"def"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unknown participant", func(t *testing.T) {
		svc := new(MockAppointmentService)
		router := setupAppointmentRouter(svc)

		svc.On("Create", mock.Anything).Return(nil, apperrors.ErrNotFound("appointment", "User or Doctor not found"))

		body := `{"doctorId":"` + testDoctorID + `","userId":"` + testUserID + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User or Doctor not found")
	})
}

func TestAppointmentHandler_Confirm(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		svc := new(MockAppointmentService)
		router := setupAppointmentRouter(svc)

		svc.On("Confirm", mock.AnythingOfType("*dto.ConfirmAppointmentRequest")).Return(&models.Appointment{
			BaseModel: models.BaseModel{ID: testAppointmentID},
			Status:    models.AppointmentStatusConfirmed,
		}, nil)

		body := `{"appointmentId":"` + testAppointmentID + `","appointmentDate":"2026-09-10T14:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/appointments/confirm", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Appointment confirmed successfully!")
	})

	t.Run("illegal transition", func(t *testing.T) {
		svc := new(MockAppointmentService)
		router := setupAppointmentRouter(svc)

		svc.On("Confirm", mock.Anything).Return(nil, apperrors.ErrInvalidStatusTransition("cancelled", "confirmed"))

		body := `{"appointmentId":"` + testAppointmentID + `","appointmentDate":"2026-09-10"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/appointments/confirm", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "illegal status transition")
	})
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	svc := new(MockAppointmentService)
	router := setupAppointmentRouter(svc)

	svc.On("UpdateStatus", testAppointmentID, models.AppointmentStatusCancelled).Return(&models.Appointment{
		BaseModel: models.BaseModel{ID: testAppointmentID},
		Status:    models.AppointmentStatusCancelled,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/"+testAppointmentID+"/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
}

func TestAppointmentHandler_UpdateStatus_UnknownValue(t *testing.T) {
	svc := new(MockAppointmentService)
	router := setupAppointmentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/"+testAppointmentID+"/status", strings.NewReader(`{"status":"scheduled"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestAppointmentHandler_GetDetails_NotFound(t *testing.T) {
	svc := new(MockAppointmentService)
	router := setupAppointmentRouter(svc)

	svc.On("GetDetails", testAppointmentID).Return(nil, apperrors.ErrNotFound("appointment", "Appointment not found"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/"+testAppointmentID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment not found")
}
