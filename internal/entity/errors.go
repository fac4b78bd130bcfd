package entity

import (
	"errors"
	"fmt"
)

// Error categories. Every error surfaced by a usecase wraps exactly one of these.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrDecode              = errors.New("stored data could not be decoded")
	ErrExternalService     = errors.New("external service failure")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Validation errors.
var (
	ErrReferenceRequired   = fmt.Errorf("%w: reference is required", ErrValidation)
	ErrInvalidReference    = fmt.Errorf("%w: invalid reference", ErrValidation)
	ErrUserNameRequired    = fmt.Errorf("%w: user name is required", ErrValidation)
	ErrMessageRequired     = fmt.Errorf("%w: message is required", ErrValidation)
	ErrMessageTextRequired = fmt.Errorf("%w: message text is required", ErrValidation)
	ErrInvalidMessageID    = fmt.Errorf("%w: invalid message id", ErrValidation)
	ErrQuoteRequired       = fmt.Errorf("%w: quote text is required", ErrValidation)
	ErrQuoteTooLong        = fmt.Errorf("%w: quote exceeds %d bytes", ErrValidation, MaxQuoteBytes)
	ErrAuthorRequired      = fmt.Errorf("%w: author is required", ErrValidation)
	ErrUnknownDimension    = fmt.Errorf("%w: unknown emotion dimension", ErrValidation)
	ErrServerNameTooLong   = fmt.Errorf("%w: server name exceeds %d characters", ErrValidation, MaxServerNameLength)
	ErrMainChannelTooLong  = fmt.Errorf("%w: main channel exceeds %d characters", ErrValidation, MaxMainChannelLength)
	ErrInvalidToken        = fmt.Errorf("%w: invalid word token", ErrValidation)
	ErrMeaningRequired     = fmt.Errorf("%w: meaning is required", ErrValidation)
)

// Not-found errors.
var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrEmotionNotFound      = fmt.Errorf("emotion %w", ErrNotFound)
	ErrMessageNotFound      = fmt.Errorf("message %w", ErrNotFound)
	ErrCustomConfigNotFound = fmt.Errorf("custom config %w", ErrNotFound)
	ErrWordNotFound         = fmt.Errorf("word %w", ErrNotFound)
)
