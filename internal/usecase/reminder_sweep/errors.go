package reminder_sweep

import "errors"

var (
	// ErrInternal возвращается, когда развертка не смогла получить
	// список бронирований
	ErrInternal = errors.New("reminder_sweep: internal error")
)
