// Package demo shows the callable shapes a Dispatcher accepts: a free
// function, a package-level "static" function, a method bound to an
// instance, a function object and an anonymous closure.
package demo

import (
	"fmt"
	"io"
	"os"

	"github.com/yaoapp/callbacks/event"
	"github.com/yaoapp/callbacks/event/types"
)

// StaticValue is returned by StaticListener.
const StaticValue = 1

var out io.Writer = os.Stdout

// SetOutput sets where the demo listeners print. nil restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// GlobalListener is a plain function listener.
func GlobalListener(value string) int {
	fmt.Fprintf(out, "Global function says: %s", value)
	return 0
}

// StaticListener plays the part of a static member function: it keeps no
// state and returns StaticValue.
func StaticListener(value string) int {
	fmt.Fprintf(out, "Static member function says: %s", value)
	return StaticValue
}

// Speaker holds the state used by its bound listener.
type Speaker struct {
	value int
}

// NewSpeaker creates a Speaker whose InstanceListener returns value.
func NewSpeaker(value int) *Speaker {
	return &Speaker{value: value}
}

// InstanceListener is meant to be registered as the method value
// s.InstanceListener, which binds s.
func (s *Speaker) InstanceListener(value string) int {
	fmt.Fprintf(out, "Instance member function says: %s", value)
	return s.value
}

// Length is a function object: it implements types.Listener directly and
// returns the length of the fired value in bytes.
type Length struct{}

// OnEvent implements types.Listener.
func (Length) OnEvent(value string) int {
	fmt.Fprintf(out, "Function object says: %s", value)
	return len(value)
}

// New returns a Dispatcher with one listener of each shape registered, in
// this order: GlobalListener, StaticListener, a Speaker bound to
// instanceValue, a closure returning 3, and Length.
func New(instanceValue int, opts ...types.Option) *event.Dispatcher {
	d := event.New(opts...)

	d.RegisterFunc(GlobalListener)
	d.RegisterFunc(StaticListener)

	speaker := NewSpeaker(instanceValue)
	d.RegisterFunc(speaker.InstanceListener)

	d.RegisterFunc(func(value string) int {
		fmt.Fprintf(out, "Lambda function says: %s", value)
		return 3
	})

	d.Register(Length{})
	return d
}
