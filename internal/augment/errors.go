package augment

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a suggestion for the same session is already
// in flight.
var ErrBusy = errors.New("suggestion already in progress")

// ExternalServiceError reports a failed suggestion request: the provider
// errored, timed out or answered with something unusable. The session it
// was meant for is left unchanged.
type ExternalServiceError struct {
	SessionID string
	Err       error
}

func (e *ExternalServiceError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("drill suggestions: %v", e.Err)
	}
	return fmt.Sprintf("drill suggestions for %s: %v", e.SessionID, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
