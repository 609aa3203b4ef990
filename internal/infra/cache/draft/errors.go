package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден в кэше
	ErrDraftNotFound = errors.New("draft.cache: draft not found")

	// ErrCacheUnavailable возвращается при ошибках соединения с кэшем
	ErrCacheUnavailable = errors.New("draft.cache: cache unavailable")
)
