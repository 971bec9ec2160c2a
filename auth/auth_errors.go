package auth

import "errors"

// Sentinel errors returned by the AuthService. Handlers map these onto
// stable status codes; messages are the single-line bodies callers see.
//
// ErrInvalidCredentials is deliberately returned both for an unknown email
// and for a wrong password so callers cannot enumerate accounts. The
// inactive-account case is intentionally distinguishable.
var (
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("email or password is incorrect")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrAlreadyBootstrapped = errors.New("admin already exists")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrWeakPassword        = errors.New("password must contain at least 1 lowercase letter, 1 uppercase letter, 1 number and 1 special character")
	ErrInvalidName         = errors.New("username must be at least 3 characters")
	ErrInvalidStatus       = errors.New("status must be active or inactive")
	ErrMissingRefreshToken = errors.New("refresh token is required")
	ErrInvalidToken        = errors.New("invalid token")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDuplicateEmail      = errors.New("email already exists")
)
