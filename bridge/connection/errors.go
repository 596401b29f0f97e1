package connection

import "fmt"

// ConnectionError reports that the tool server could not be started or the
// protocol handshake failed.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("tool server connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
