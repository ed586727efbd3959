package neogo

import (
	"errors"
	"fmt"
)

var (
	// ErrLinkFailed is the umbrella error for store construction failures.
	ErrLinkFailed = errors.New("link failed")
)

// ErrUnknownDesignation indicates that an approach references a designation
// absent from the supplied bodies. The store cannot be built in a
// consistent state; failing fast prevents silently dangling approaches.
//
// ErrUnknownDesignation wraps ErrLinkFailed, so errors.Is(err,
// ErrLinkFailed) matches it.
type ErrUnknownDesignation struct {
	Designation string
}

func (e *ErrUnknownDesignation) Error() string {
	return fmt.Sprintf("approach references unknown designation %q", e.Designation)
}

func (e *ErrUnknownDesignation) Unwrap() error { return ErrLinkFailed }
