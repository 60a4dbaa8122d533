package services

import (
	"time"

	"github.com/stretchr/testify/mock"

	"telemind_backend/internal/models"
	"telemind_backend/internal/workers"
)

// MockUserRepository - ручной мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindConflict(username, email, mobile string) (string, error) {
	args := m.Called(username, email, mobile)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) Update(id string, fields map[string]interface{}) (*models.User, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDoctorRepository - ручной мок справочника врачей
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindAll() ([]models.Doctor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(id string) (*models.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentRepository - ручной мок репозитория записей на прием
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(id string) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(id string, status models.AppointmentStatus, appointmentDate *time.Time) (*models.Appointment, error) {
	args := m.Called(id, status, appointmentDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

// MockNotifier фиксирует поставленные в очередь уведомления
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Enqueue(n workers.Notification) bool {
	args := m.Called(n)
	return args.Bool(0)
}
