package translate

import "fmt"

// Error describes why a transport response could not be translated into
// the canonical form.
type Error struct {
	// Reason is a short description of the failing step.
	Reason string
	// StatusCode is the offending transport status code, 0 when the
	// failure is not status-related.
	StatusCode int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("translate: %s (status %d)", e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("translate: %s", e.Reason)
}
