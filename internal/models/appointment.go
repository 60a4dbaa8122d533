package models

import "time"

// Appointment - запись пациента к врачу.
// Имя/email обеих сторон снимаются снапшотом в момент создания и
// дальше не синхронизируются с исходными сущностями. Каскадного
// удаления при удалении User/Doctor нет.
type Appointment struct {
	BaseModel
	DoctorID string `gorm:"type:uuid;index;not null" json:"doctorId"`
	UserID   string `gorm:"type:uuid;index;not null" json:"userId"`

	// Денормализованный снапшот на момент создания
	UserName    string `gorm:"not null" json:"userName"`
	UserEmail   string `gorm:"not null" json:"userEmail"`
	DoctorName  string `gorm:"not null" json:"doctorName"`
	DoctorEmail string `gorm:"not null" json:"doctorEmail"`

	Status        AppointmentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus     `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`

	Amount          *float64   `json:"amount,omitempty"`
	PaymentMethod   string     `json:"paymentMethod,omitempty"`
	TransactionID   string     `json:"transactionId,omitempty"`
	AppointmentDate *time.Time `json:"appointmentDate,omitempty"`
	MeetingLink     string     `json:"meetingLink,omitempty"`
}
