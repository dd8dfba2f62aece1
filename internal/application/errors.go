package application

import "errors"

// Sentinel error text doubles as the wire message the legacy clients
// display; "Project Number already exists" in particular is fixed by the
// original frontend.
var (
	ErrEmailTaken             = errors.New("Email already registered")
	ErrInvalidCredentials     = errors.New("Invalid credentials or account not approved")
	ErrUserNotFound           = errors.New("User not found")
	ErrTicketNotFound         = errors.New("Ticket not found")
	ErrDuplicateProjectNumber = errors.New("Project Number already exists")
	ErrDuplicateTicketID      = errors.New("Ticket ID already exists")
	ErrInvalidDate            = errors.New("Invalid date format")
	ErrUnknownAction          = errors.New("Unknown action")
	ErrPasswordHashFailure    = errors.New("failed to hash password")
	ErrStorageDisabled        = errors.New("attachment storage is not configured")
)

// ErrorKind classifies failures for programmatic handling; the wire keeps
// only the human-readable message.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindEmailTaken
	KindInvalidCredentials
	KindNotFound
	KindDuplicateProjectNumber
	KindUnknownAction
	KindBadRequest
)

func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return KindEmailTaken
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrTicketNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateProjectNumber), errors.Is(err, ErrDuplicateTicketID):
		return KindDuplicateProjectNumber
	case errors.Is(err, ErrUnknownAction):
		return KindUnknownAction
	case errors.Is(err, ErrInvalidDate):
		return KindBadRequest
	default:
		return KindInternal
	}
}
