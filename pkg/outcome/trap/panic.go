package trap

import "fmt"

// PanicError carries a recovered panic value through the error channel.
// Value holds whatever was passed to panic, unchanged; callers needing
// the original payload read it directly. When the payload is itself an
// error it also participates in errors.Is/As via Unwrap.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
