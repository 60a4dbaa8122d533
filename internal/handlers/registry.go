package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UserHandler        *UserHandler
	DoctorHandler      *DoctorHandler
	AppointmentHandler *AppointmentHandler
}
