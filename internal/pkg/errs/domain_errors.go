package errs

import "errors"

// Cross-layer sentinels shared by commands, queries and handlers.
var (
	ErrNotFound                = errors.New("not found")
	ErrValidation              = errors.New("validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
