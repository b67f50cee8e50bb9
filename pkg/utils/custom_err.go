package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrUserNotFound       = errors.New("user not found")
	ErrGuideNotFound      = errors.New("guide not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrLensNotFound       = errors.New("lens not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidBetaCode    = errors.New("invalid beta code")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")

	// Token verification distinguishes exactly two failure kinds: a
	// well-formed token past its expiry, and everything else.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
