package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"telemind_backend/internal/logger"
	"telemind_backend/internal/models"
	"telemind_backend/internal/repositories"
	"telemind_backend/internal/services/dto"
	"telemind_backend/internal/workers"
	"telemind_backend/pkg/apperrors"
)

// Notifier - асинхронный канал уведомлений. Постановка в очередь
// не блокирует и никогда не роняет бизнес-операцию.
type Notifier interface {
	Enqueue(n workers.Notification) bool
}

type AppointmentService interface {
	Create(req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error)
	Confirm(req *dto.ConfirmAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error)
	GetDetails(id string) (*dto.AppointmentDetails, error)
}

type AppointmentServiceImpl struct {
	appointmentRepo repositories.AppointmentRepository
	userRepo        repositories.UserRepository
	doctorRepo      repositories.DoctorRepository
	notifier        Notifier
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	userRepo repositories.UserRepository,
	doctorRepo repositories.DoctorRepository,
	notifier Notifier,
) AppointmentService {
	return &AppointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		notifier:        notifier,
	}
}

// Create создает запись в статусе pending. Имя и email обеих сторон
// снимаются снапшотом в момент создания.
func (s *AppointmentServiceImpl) Create(req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("appointment", "User or Doctor not found")
		}
		return nil, apperrors.InternalError(err)
	}

	doctor, err := s.doctorRepo.FindByID(req.DoctorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrNotFound("appointment", "User or Doctor not found")
		}
		return nil, apperrors.InternalError(err)
	}

	appointment := &models.Appointment{
		DoctorID:      doctor.ID,
		UserID:        user.ID,
		UserName:      user.FullName,
		UserEmail:     user.Email,
		DoctorName:    doctor.Name,
		DoctorEmail:   doctor.Email,
		Status:        models.AppointmentStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateAppointmentResponse{
		Appointment: appointment,
		User:        dto.NewUserDisplay(user),
		Doctor:      dto.NewDoctorDisplay(doctor),
	}, nil
}

// Confirm переводит запись pending -> confirmed, проставляет дату приема
// и ставит в очередь ровно одно письмо-подтверждение пациенту.
// Сбой постановки/доставки уведомления не влияет на результат операции.
func (s *AppointmentServiceImpl) Confirm(req *dto.ConfirmAppointmentRequest) (*models.Appointment, error) {
	appointmentDate, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid appointment date format")
	}

	appointment, err := s.appointmentRepo.FindByID(req.AppointmentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrNotFound("appointment", "Appointment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !appointment.Status.CanTransitionTo(models.AppointmentStatusConfirmed) {
		return nil, apperrors.ErrInvalidStatusTransition(string(appointment.Status), string(models.AppointmentStatusConfirmed))
	}

	updated, err := s.appointmentRepo.UpdateStatus(req.AppointmentID, models.AppointmentStatusConfirmed, &appointmentDate)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrNotFound("appointment", "Appointment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendConfirmationEmail(updated)

	return updated, nil
}

// UpdateStatus - единственный путь смены статуса записи.
// Недопустимый переход по карте состояний отклоняется типизированной ошибкой.
func (s *AppointmentServiceImpl) UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrMalformedID("appointment", "Invalid Appointment ID")
	}
	if !status.IsValid() {
		return nil, apperrors.NewBadRequestError("Unknown appointment status: " + string(status))
	}

	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrNotFound("appointment", "Appointment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition(string(appointment.Status), string(status))
	}

	updated, err := s.appointmentRepo.UpdateStatus(id, status, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// GetDetails возвращает запись с развернутыми данными врача и пациента.
// Удаленная исходная сущность не ошибка: клиент получает снапшот.
func (s *AppointmentServiceImpl) GetDetails(id string) (*dto.AppointmentDetails, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrMalformedID("appointment", "Invalid Appointment ID")
	}

	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrNotFound("appointment", "Appointment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	details := &dto.AppointmentDetails{Appointment: appointment}

	if doctor, err := s.doctorRepo.FindByID(appointment.DoctorID); err == nil {
		details.Doctor = dto.NewDoctorDisplay(doctor)
	}
	if user, err := s.userRepo.FindByID(appointment.UserID); err == nil {
		details.User = dto.NewUserDisplay(user)
	}

	return details, nil
}

// sendConfirmationEmail собирает письмо-подтверждение.
// Имя врача берется явным запросом к справочнику, а не из вложенных
// данных записи; если врач уже удален, используется снапшот.
func (s *AppointmentServiceImpl) sendConfirmationEmail(appointment *models.Appointment) {
	if s.notifier == nil {
		return
	}

	doctorName := appointment.DoctorName
	if doctor, err := s.doctorRepo.FindByID(appointment.DoctorID); err == nil {
		doctorName = doctor.Name
	} else {
		logger.Warn("doctor lookup failed for confirmation email, using snapshot",
			"appointment_id", appointment.ID,
			"doctor_id", appointment.DoctorID,
		)
	}

	dateStr := ""
	if appointment.AppointmentDate != nil {
		dateStr = appointment.AppointmentDate.Format(time.RFC1123)
	}

	s.notifier.Enqueue(workers.Notification{
		To:      appointment.UserEmail,
		Subject: "Appointment Confirmed",
		Body:    fmt.Sprintf("Your appointment with Dr. %s has been confirmed for %s.", doctorName, dateStr),
	})
}

func parseAppointmentDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
