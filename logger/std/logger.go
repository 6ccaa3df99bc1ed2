package std

import (
	"fmt"
	"io"
	"os"

	"github.com/pwnedgod/uuidcodec/logger"
)

type stdLogger struct {
	out    io.Writer
	errOut io.Writer
	debug  bool
}

// NewLogger writes Info and Debug lines to stdout and Error lines to stderr.
func NewLogger() logger.Logger {
	return NewLoggerWithWriters(os.Stdout, os.Stderr)
}

func NewLoggerWithWriters(out io.Writer, errOut io.Writer) logger.Logger {
	return &stdLogger{
		out:    out,
		errOut: errOut,
		debug:  true,
	}
}

// NewQuietLogger is like NewLoggerWithWriters but drops Debug lines.
func NewQuietLogger(out io.Writer, errOut io.Writer) logger.Logger {
	return &stdLogger{
		out:    out,
		errOut: errOut,
	}
}

func (l stdLogger) Info(args ...interface{}) {
	fmt.Fprintln(l.out, append([]interface{}{"[INFO]"}, args...)...)
}

func (l stdLogger) Debug(args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintln(l.out, append([]interface{}{"[DEBUG]"}, args...)...)
}

func (l stdLogger) Error(args ...interface{}) {
	fmt.Fprintln(l.errOut, append([]interface{}{"[ERROR]"}, args...)...)
}
