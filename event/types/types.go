package types

import "io"

// ListenerFunc adapts an ordinary function to a Listener. Free functions,
// package-level functions, method values bound to an instance and closures
// all convert to ListenerFunc.
type ListenerFunc func(value string) int

// OnEvent calls f(value).
func (f ListenerFunc) OnEvent(value string) int {
	return f(value)
}

// Option configures a Dispatcher.
type Option func(*Options)

// Options is the configuration record for a Dispatcher.
type Options struct {
	Name   string    // Tag used in log lines, default "dispatcher"
	Output io.Writer // Receives the dispatch report; nil writes nothing
}

// Default configuration values.
const (
	DefaultName = "dispatcher"
)
