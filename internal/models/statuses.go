package models

type AppointmentStatus string
type PaymentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// allowedTransitions - явная карта разрешенных переходов статуса записи.
// completed и cancelled - терминальные состояния.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}

// IsValid проверяет, что значение статуса входит в enum
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo проверяет допустимость перехода s -> target
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsValid проверяет значение статуса оплаты
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}
