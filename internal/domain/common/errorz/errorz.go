package errorz

import "errors"

var (
	ErrEmptyContent       = errors.New("empty content")
	ErrContentTooLong     = errors.New("content too long")
	ErrInvalidSSID        = errors.New("invalid ssid")
	ErrInvalidAuthType    = errors.New("invalid auth type")
	ErrPasswordRequired   = errors.New("password required")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrPasswordNotAllowed = errors.New("password not allowed for open network")
	ErrEmptyContact       = errors.New("contact has no content fields")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhone       = errors.New("invalid phone")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrCodeNotFound       = errors.New("code not found")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidLogo        = errors.New("invalid logo image")
)
