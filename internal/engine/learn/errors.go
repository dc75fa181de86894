package learn

import "fmt"

// TransportError reports a failed YouTube call. Op is "search" or "details".
// Callers treat it as "no results": it is never fatal.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tutorial %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
