package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const prefix = "LNBASIC"

// Init installs the default logger on stderr. Debug output is only shown in
// verbose mode; otherwise warnings and errors pass.
func Init(debug, noColor bool) {
	log.SetDefault(New(os.Stderr, debug, noColor))
}

// New builds a logger writing to w with the interpreter's prefix and level rules
func New(w io.Writer, debug, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: false, // the REPL is interactive, timestamps are noise
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
		Level:           log.WarnLevel,
	})

	if debug {
		l.SetLevel(log.DebugLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return l
}
