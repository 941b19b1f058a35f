package diag

import (
	"io"
	"log/slog"
	"os"
)

type RootLoggerOpts struct {
	jsonLogs           bool
	logLevel           slog.Level
	optionalOutputFile string
	output             io.Writer
}

func (o *RootLoggerOpts) WithJSONLogs(value bool) *RootLoggerOpts {
	o.jsonLogs = value
	return o
}

func (o *RootLoggerOpts) WithLogLevel(value slog.Level) *RootLoggerOpts {
	o.logLevel = value
	return o
}

// WithOptionalOutputFile makes the logger write to the given file instead of stdout.
// Empty value keeps the default output.
func (o *RootLoggerOpts) WithOptionalOutputFile(value string) *RootLoggerOpts {
	o.optionalOutputFile = value
	return o
}

func (o *RootLoggerOpts) WithOutput(value io.Writer) *RootLoggerOpts {
	o.output = value
	return o
}

func NewRootLoggerOpts() *RootLoggerOpts {
	return &RootLoggerOpts{
		logLevel: slog.LevelInfo,
		output:   os.Stdout,
	}
}

func SetupRootLogger(opts *RootLoggerOpts) *slog.Logger {
	output := opts.output
	if opts.optionalOutputFile != "" {
		file, err := os.OpenFile(opts.optionalOutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(err)
		}
		output = file
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.logLevel}
	var handler slog.Handler
	if opts.jsonLogs {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	return slog.New(&contextAttrsHandler{next: handler})
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("err", err)
}
