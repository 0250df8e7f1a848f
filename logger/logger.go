package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/yaoapp/callbacks/config"
	kunlog "github.com/yaoapp/kun/log"
)

var (
	gray   = color.New(color.FgHiBlack)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// console is where development mode mirrors log lines. nil disables the mirror.
var console io.Writer = terminal(os.Stdout)

func terminal(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return f
	}
	return nil
}

// SetConsole replaces the development console writer. Pass nil to disable it.
func SetConsole(w io.Writer) {
	console = w
}

// Logger provides component-level logging. Every line goes to kun/log; in
// development mode it is also mirrored, colored, to the console.
type Logger struct {
	tag string
}

// New creates a Logger tagged with the given component name
// (e.g. "dispatcher", "demo", "cmd").
func New(tag string) *Logger {
	return &Logger{tag: tag}
}

// Tag returns the component name.
func (l *Logger) Tag() string {
	return l.tag
}

func (l *Logger) prefix() string {
	return fmt.Sprintf("[callbacks:%s]", l.tag)
}

func (l *Logger) mirror(c *color.Color, mark, msg string) {
	if console == nil || !config.IsDevelopment() {
		return
	}
	c.Fprintf(console, "  %s %s %s\n", mark, l.prefix(), msg)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(gray, "→", msg)
	kunlog.Trace("%s %s", l.prefix(), msg)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(gray, "•", msg)
	kunlog.Debug("%s %s", l.prefix(), msg)
}

func (l *Logger) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(cyan, "ℹ", msg)
	kunlog.Info("%s %s", l.prefix(), msg)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(yellow, "⚠", msg)
	kunlog.Warn("%s %s", l.prefix(), msg)
}

func (l *Logger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(red, "✗", msg)
	kunlog.Error("%s %s", l.prefix(), msg)
}

func (l *Logger) fields(fields kunlog.F) kunlog.F {
	f := kunlog.F{"component": l.tag}
	for k, v := range fields {
		f[k] = v
	}
	return f
}

// InfoWith logs at info level with structured fields.
func (l *Logger) InfoWith(fields kunlog.F, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(cyan, "ℹ", msg)
	kunlog.With(l.fields(fields)).Info("%s %s", l.prefix(), msg)
}

// WarnWith logs at warn level with structured fields.
func (l *Logger) WarnWith(fields kunlog.F, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(yellow, "⚠", msg)
	kunlog.With(l.fields(fields)).Warn("%s %s", l.prefix(), msg)
}

// ErrorWith logs at error level with structured fields.
func (l *Logger) ErrorWith(fields kunlog.F, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mirror(red, "✗", msg)
	kunlog.With(l.fields(fields)).Error("%s %s", l.prefix(), msg)
}

// IsDev returns true when running in development mode.
func IsDev() bool {
	return config.IsDevelopment()
}
