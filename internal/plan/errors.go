package plan

import "errors"

// ErrNotFound signals that a lookup target does not exist. Callers decide
// whether to retry or report; it is never fatal to the session.
var ErrNotFound = errors.New("not found")

// ErrNoSubstitute signals that no qualifying substitute exists for the
// exercise being replaced.
var ErrNoSubstitute = errors.New("no qualifying substitute")
