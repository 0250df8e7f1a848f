package event

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/yaoapp/callbacks/event/types"
	"github.com/yaoapp/callbacks/logger"
	"github.com/yaoapp/kun/exception"
	kunlog "github.com/yaoapp/kun/log"
)

// ErrListenerPanic is returned by TryFire when a listener panics.
var ErrListenerPanic = errors.New("event: listener panicked")

// Dispatcher keeps an ordered list of listeners and fires values at them.
//
// Listeners run synchronously, one after another, in registration order.
// There is no removal, no deduplication and no isolation: a panicking
// listener aborts the rest of the batch.
//
// A Dispatcher is not safe for concurrent use. The zero value is ready to use.
type Dispatcher struct {
	name      string
	out       io.Writer
	log       *logger.Logger
	listeners []types.Listener
}

// New creates an empty Dispatcher.
func New(opts ...types.Option) *Dispatcher {
	o := &types.Options{Name: types.DefaultName}
	for _, opt := range opts {
		opt(o)
	}
	return &Dispatcher{
		name: o.Name,
		out:  o.Output,
		log:  logger.New(o.Name),
	}
}

func (d *Dispatcher) logger() *logger.Logger {
	if d.log == nil {
		if d.name == "" {
			d.name = types.DefaultName
		}
		d.log = logger.New(d.name)
	}
	return d.log
}

// Register appends a listener. The same listener may be registered any
// number of times and is then invoked once per registration.
// A nil listener, including a nil ListenerFunc, is dropped.
func (d *Dispatcher) Register(listener types.Listener) {
	if listener == nil {
		d.logger().Warn("register: nil listener dropped")
		return
	}
	if fn, ok := listener.(types.ListenerFunc); ok && fn == nil {
		d.logger().Warn("register: nil listener func dropped")
		return
	}
	d.listeners = append(d.listeners, listener)
}

// RegisterFunc appends a plain function as a listener.
func (d *Dispatcher) RegisterFunc(fn func(value string) int) {
	d.Register(types.ListenerFunc(fn))
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Fire invokes every listener with value, in registration order, and returns
// their results in the same order. Listeners registered while Fire is running
// are not invoked by that call.
//
// If a listener panics, the panic propagates to the caller and the remaining
// listeners are skipped.
func (d *Dispatcher) Fire(value string) []int {
	fire, listeners := d.begin(value)
	results := make([]int, 0, len(listeners))
	for i, l := range listeners {
		results = append(results, d.report(fire, i, l.OnEvent(value)))
	}
	return results
}

// TryFire is Fire with a fail-fast error in place of the panic. When a
// listener panics, TryFire stops and returns the results collected so far
// with an error wrapping ErrListenerPanic. Remaining listeners are not invoked.
func (d *Dispatcher) TryFire(value string) ([]int, error) {
	fire, listeners := d.begin(value)
	results := make([]int, 0, len(listeners))
	for i, l := range listeners {
		n, err := call(i, l, value)
		if err != nil {
			d.logger().ErrorWith(kunlog.F{
				"fire":     fire,
				"listener": i,
				"value":    value,
			}, "fire %s aborted: %v", fire, err)
			return results, err
		}
		results = append(results, d.report(fire, i, n))
	}
	return results, nil
}

// begin snapshots the listeners, writes the dispatch header and returns the
// fire ID that tags every log line of this call.
func (d *Dispatcher) begin(value string) (string, []types.Listener) {
	fire := uuid.NewString()
	listeners := d.listeners
	d.logger().Trace("fire %s: value=%q listeners=%d", fire, value, len(listeners))
	if d.out != nil {
		fmt.Fprintf(d.out, "Dispatching with value: %s\n", value)
	}
	return fire, listeners
}

func (d *Dispatcher) report(fire string, i, n int) int {
	if d.out != nil {
		fmt.Fprintf(d.out, " - Returned %d\n", n)
	}
	d.logger().Debug("fire %s: listener %d returned %d", fire, i, n)
	return n
}

func call(i int, l types.Listener, value string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(i, r)
		}
	}()
	return l.OnEvent(value), nil
}

// panicError converts a recovered panic value into an error wrapping
// ErrListenerPanic. Error panic values stay reachable through errors.Is/As.
func panicError(i int, r any) error {
	switch v := r.(type) {
	case exception.Exception:
		return fmt.Errorf("%w: listener %d: %s (code %d)", ErrListenerPanic, i, v.Message, v.Code)
	case *exception.Exception:
		return fmt.Errorf("%w: listener %d: %s (code %d)", ErrListenerPanic, i, v.Message, v.Code)
	case error:
		return fmt.Errorf("%w: listener %d: %w", ErrListenerPanic, i, v)
	default:
		return fmt.Errorf("%w: listener %d: %v", ErrListenerPanic, i, v)
	}
}
