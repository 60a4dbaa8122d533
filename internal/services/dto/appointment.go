package dto

import "telemind_backend/internal/models"

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" validate:"required,uuid"`
	UserID   string `json:"userId" validate:"required,uuid"`
}

type ConfirmAppointmentRequest struct {
	AppointmentID   string `json:"appointmentId" validate:"required,uuid"`
	AppointmentDate string `json:"appointmentDate" validate:"required"` // RFC3339 или YYYY-MM-DD
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// DoctorDisplay - подмножество полей врача для клиентского рендеринга
type DoctorDisplay struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Hospital    string `json:"hospital"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
}

func NewDoctorDisplay(d *models.Doctor) *DoctorDisplay {
	if d == nil {
		return nil
	}
	return &DoctorDisplay{
		Name:        d.Name,
		Designation: d.Designation,
		Hospital:    d.Hospital,
		Phone:       d.Phone,
		Email:       d.Email,
	}
}

// CreateAppointmentResponse - созданная запись плюс display-данные
// обеих сторон для немедленного отображения клиентом
type CreateAppointmentResponse struct {
	Appointment *models.Appointment `json:"appointment"`
	User        *UserDisplay        `json:"user"`
	Doctor      *DoctorDisplay      `json:"doctor"`
}

// AppointmentDetails - запись с развернутыми ссылками на врача и пациента.
// Если исходная сущность удалена, display-поля остаются nil, а клиенту
// доступен снапшот внутри самой записи.
type AppointmentDetails struct {
	Appointment *models.Appointment `json:"appointment"`
	Doctor      *DoctorDisplay      `json:"doctor,omitempty"`
	User        *UserDisplay        `json:"user,omitempty"`
}
