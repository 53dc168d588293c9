package service

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotDeletable  = errors.New("order cannot be deleted")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotActivated       = errors.New("account not activated")
	ErrAlreadyActivated   = errors.New("account already activated")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCode        = errors.New("invalid confirmation code")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

// ValidationError — ошибка валидации входных данных с сообщением для клиента.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
