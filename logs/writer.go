package logs

import (
	"io"
	"os"
)

// Writer receives the text log records. Stdout is reserved for program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
