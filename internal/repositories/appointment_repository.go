package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"telemind_backend/internal/models"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	FindByID(id string) (*models.Appointment, error)
	// UpdateStatus персистит переход статуса; appointmentDate
	// пишется только если передан (используется подтверждением).
	UpdateStatus(id string, status models.AppointmentStatus, appointmentDate *time.Time) (*models.Appointment, error)
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *AppointmentRepositoryImpl) FindByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepositoryImpl) UpdateStatus(id string, status models.AppointmentStatus, appointmentDate *time.Time) (*models.Appointment, error) {
	fields := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if appointmentDate != nil {
		fields["appointment_date"] = appointmentDate
	}

	result := r.db.Model(&models.Appointment{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAppointmentNotFound
	}

	return r.FindByID(id)
}
