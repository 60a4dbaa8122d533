package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	UserService        UserService
	DoctorService      DoctorService
	AppointmentService AppointmentService
}
