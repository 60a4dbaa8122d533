package workers

import (
	"context"

	"telemind_backend/internal/email"
	"telemind_backend/internal/logger"
)

// Notification - одно письмо в очереди на отправку
type Notification struct {
	To      string
	Subject string
	Body    string
}

// NotificationWorker - фоновая доставка уведомлений.
// Очередь ограничена: Enqueue никогда не блокирует обработчик запроса,
// при переполнении уведомление отбрасывается с warning в логе.
// Ошибки отправки идут только в лог и не влияют на вызывающего.
type NotificationWorker struct {
	queue  chan Notification
	sender email.Sender
}

// NewNotificationWorker создает воркер с очередью queueSize
func NewNotificationWorker(sender email.Sender, queueSize int) *NotificationWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &NotificationWorker{
		queue:  make(chan Notification, queueSize),
		sender: sender,
	}
}

// Enqueue ставит уведомление в очередь без блокировки.
// Возвращает false, если очередь переполнена и уведомление отброшено.
func (w *NotificationWorker) Enqueue(n Notification) bool {
	select {
	case w.queue <- n:
		return true
	default:
		logger.Warn("notification queue full, dropping message", "to", n.To, "subject", n.Subject)
		return false
	}
}

// Start запускает цикл доставки; останавливается по отмене контекста
func (w *NotificationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *NotificationWorker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopped")
			return
		case n := <-w.queue:
			if err := w.sender.Send(n.To, n.Subject, n.Body); err != nil {
				logger.WorkerLog("notification_worker", "send_email", err)
				continue
			}
			logger.Debug("notification delivered", "to", n.To, "subject", n.Subject)
		}
	}
}
