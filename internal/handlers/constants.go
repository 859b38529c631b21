package handlers

const (
	AdminKeyHeader = "X-Admin-Key"

	maxBodyBytes = 1 << 20

	ErrInvalidJSON         = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrNotFound            = "Not found"
	ErrConflict            = "Progress changed, reload and try again"
	ErrLocked              = "Activity is locked"
	ErrTooManyRequests     = "Too many requests"
	ErrInternalServerError = "Internal server error"
)
