package event

import (
	"io"

	"github.com/yaoapp/callbacks/event/types"
)

// Name sets the tag used in the Dispatcher's log lines. Default is "dispatcher".
func Name(name string) types.Option {
	return func(o *types.Options) {
		o.Name = name
	}
}

// Output sets the writer receiving the dispatch report: one
// "Dispatching with value: ..." line per Fire and one " - Returned n" line
// after each listener returns. A nil writer disables the report.
func Output(w io.Writer) types.Option {
	return func(o *types.Options) {
		o.Output = w
	}
}
