package worker

import (
	"context"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/usecase/reminder_sweep"
)

// SweepUseCase интерфейс развертки напоминаний
type SweepUseCase interface {
	Execute(ctx context.Context, req *reminder_sweep.Request) (*reminder_sweep.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReminderWorker периодически запускает развертку напоминаний о
// предстоящих мероприятиях
type ReminderWorker struct {
	sweep    SweepUseCase
	interval time.Duration
	logger   Logger
}

func NewReminderWorker(sweep SweepUseCase, interval time.Duration, logger Logger) *ReminderWorker {
	return &ReminderWorker{
		sweep:    sweep,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает воркер до отмены контекста. Первая развертка
// выполняется сразу, не дожидаясь первого тика
func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("reminder worker started, interval=%s", w.interval)

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ReminderWorker) runOnce(ctx context.Context) {
	resp, err := w.sweep.Execute(ctx, &reminder_sweep.Request{})
	if err != nil {
		w.logger.Error("reminder worker: sweep failed: %v", err)
		return
	}

	if resp.Failed > 0 {
		w.logger.Warn("reminder worker: %d of %d reminders failed", resp.Failed, resp.Total)
	}
}
