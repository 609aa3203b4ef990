package run_reminder_sweep

import (
	"context"

	reminderSweep "github.com/CurtBryan/party-lab-sub000/internal/usecase/reminder_sweep"
)

type ReminderSweepUseCase interface {
	Execute(ctx context.Context, req *reminderSweep.Request) (*reminderSweep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
