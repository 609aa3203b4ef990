package notifier

// Шаблоны транзакционных писем
const (
	TemplateBookingConfirmation = "booking_confirmation"
	TemplateBookingNotice       = "booking_notice"
	TemplateEventReminder       = "event_reminder"
	TemplateReminderNotice      = "reminder_notice"
)

// sendRequest тело запроса к сервису рассылки
type sendRequest struct {
	Template  string                 `json:"template"`
	Recipient string                 `json:"recipient"`
	Data      map[string]interface{} `json:"data"`
}
