package apperror

// AppError is a custom error type that includes an HTTP status code and a stable
// machine-readable error code that clients can branch on.
type AppError struct {
	Status  int    // HTTP Status Code (e.g., 400, 404)
	Code    string // Stable machine-readable code (e.g., "RESOURCE_CONFLICT")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
