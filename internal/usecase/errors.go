package usecase

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("user not found in context")
	ErrNotPatient         = errors.New("only patients can perform this action")
	ErrPatientNotFound    = errors.New("patient profile not found")
	ErrUnsupportedRole    = errors.New("role cannot view this resource")
)
