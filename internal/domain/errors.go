package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")

	// ErrValidation covers missing or malformed input fields.
	ErrValidation = errors.New("validation failed")
	// ErrPreconditionFailed rejects a transition from a state that does
	// not allow it, e.g. cancelling a non-scheduled appointment.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrConsentRequired rejects signing without the explicit
	// acknowledgment step.
	ErrConsentRequired = errors.New("signature consent not given")
	// ErrUnknownParticipant rejects appointment participants that do not
	// reference an existing user.
	ErrUnknownParticipant = errors.New("participant does not reference an existing user")
	// ErrUnknownSubtype rejects a case write whose subtype is not
	// registered under its base type.
	ErrUnknownSubtype = errors.New("subtype is not registered for the base type")
)
