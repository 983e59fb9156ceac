package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("password hashing failed")

	// ErrTokenIsExpiredOrInvalid is the class of every session token
	// rejection. The causes below wrap it.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenIsExpired          = fmt.Errorf("%w: expired", ErrTokenIsExpiredOrInvalid)
	ErrTokenSignatureInvalid   = fmt.Errorf("%w: invalid signature", ErrTokenIsExpiredOrInvalid)
	ErrTokenMalformed          = fmt.Errorf("%w: malformed", ErrTokenIsExpiredOrInvalid)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
