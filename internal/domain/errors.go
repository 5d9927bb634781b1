package domain

import "errors"

// ErrProviderUnavailable indicates an external model call failed after all
// retries were exhausted (network, auth, rate limit, timeout).
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrValidation indicates the request was rejected before any external call.
var ErrValidation = errors.New("validation failed")

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// ErrCacheUnavailable indicates the cache persistence layer failed. Callers
// bypass the cache for the request instead of failing it.
var ErrCacheUnavailable = errors.New("cache unavailable")

// ErrDimensionMismatch indicates a vector does not match the index dimension.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")
