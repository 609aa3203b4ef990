package reminder_sweep

// Request модель запроса на запуск развертки напоминаний.
// Развертка не параметризуется: горизонт зашит в бизнес-правило
type Request struct{}

// Response модель ответа с итогами развертки
type Response struct {
	Total      int // Сколько бронирований подошло под напоминание
	Successful int // Скольким хотя бы одно уведомление ушло
	Failed     int // Скольким не ушло ни одного
}
