package cache

import "errors"

var (
	// ErrCacheUnavailable возвращается, когда хранилище кэша не отвечает
	ErrCacheUnavailable = errors.New("cache: storage unavailable")
)
