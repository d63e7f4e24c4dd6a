package generator

import "fmt"

// Output operations reported by OutputError.
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
)

// OutputError is returned when a variant directory cannot be created or a
// document cannot be written.
type OutputError struct {
	Op   string
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
