package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/forkpush/forkpush/internal/utils"
)

// Reporter emits formatted narration lines to an underlying sink.
type Reporter interface {
	Printf(format string, arguments ...any)
}

type writerReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a Reporter that writes to the provided io.Writer,
// flushing after each line when the writer supports it.
func NewWriterReporter(writer io.Writer) Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return writerReporter{writer: utils.NewFlushingWriter(writer)}
}

// NewSilentReporter constructs a Reporter that discards everything.
func NewSilentReporter() Reporter {
	return writerReporter{writer: io.Discard}
}

func (reporter writerReporter) Printf(format string, arguments ...any) {
	if reporter.writer == nil {
		return
	}
	fmt.Fprintf(reporter.writer, format, arguments...)
}
