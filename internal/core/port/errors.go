package port

import "errors"

var (
	// ErrNotFound is returned when the targeted record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a conditional write finds a newer
	// version of the record than the one it was prepared against.
	ErrConflict = errors.New("version conflict")
	// ErrChannelUnsupported is returned when a campaign whose channel is
	// not push is asked to be sent.
	ErrChannelUnsupported = errors.New("only push campaigns can be sent")
	// ErrUnauthenticated is returned for a missing or invalid bearer
	// credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the caller is authenticated but lacks
	// the required role.
	ErrForbidden = errors.New("forbidden")
)
