package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) color() string {
	switch l {
	case DEBUG:
		return colorGray
	case INFO:
		return colorBlue
	case WARN:
		return colorYellow
	case ERROR:
		return colorRed
	default:
		return colorReset
	}
}

type leveledLogger struct {
	mu      sync.RWMutex
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

var global = &leveledLogger{out: os.Stdout, errOut: os.Stderr}

// SetVerbose enables DEBUG output.
func SetVerbose(verbose bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.verbose = verbose
}

// SetOutput redirects all levels to w. Used by tests.
func SetOutput(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.out = w
	global.errOut = w
}

func (l *leveledLogger) log(level Level, format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level == DEBUG && !l.verbose {
		return
	}

	w := l.out
	if level >= WARN {
		w = l.errOut
	}

	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s%-5s%s %s\n", level.color(), level.String(), colorReset, message)
}

func Debug(format string, args ...interface{}) {
	global.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	global.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	global.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	global.log(ERROR, format, args...)
}

// Success prints a green checkmark line regardless of verbosity.
func Success(format string, args ...interface{}) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(global.out, "%s✓%s %s\n", colorGreen, colorReset, message)
}
