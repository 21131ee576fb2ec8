package domain

import "errors"

// ErrNotFound is returned by service and repo functions when the requested
// resource does not exist (unknown trip UUID, no snapshot yet).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidURL is returned by the upstream client when the fetch target
// could not be constructed. Effectively unreachable with the default
// configuration, since the trips URL is a fixed literal.
var ErrInvalidURL = errors.New("invalid url")

// ErrBadRequest is returned by the upstream client for any response status
// outside 200-299. The sentinel itself carries no further detail; wrapping
// messages may include the status for logs.
var ErrBadRequest = errors.New("bad request")
