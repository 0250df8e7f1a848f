package types

// Listener receives a fired value and returns one integer result.
//
// OnEvent is called synchronously by the Dispatcher, in registration order.
// A Listener that fails panics; the panic aborts the remaining listeners of
// that Fire.
type Listener interface {
	OnEvent(value string) int
}
