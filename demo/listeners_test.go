package demo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/callbacks/demo"
	"github.com/yaoapp/callbacks/event"
	"github.com/yaoapp/callbacks/event/types"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	demo.SetOutput(&buf)
	t.Cleanup(func() { demo.SetOutput(nil) })
	return &buf
}

func TestShapes(t *testing.T) {
	buf := capture(t)

	assert.Equal(t, 0, demo.GlobalListener("a"))
	assert.Equal(t, demo.StaticValue, demo.StaticListener("b"))
	assert.Equal(t, 7, demo.NewSpeaker(7).InstanceListener("c"))
	assert.Equal(t, 4, demo.Length{}.OnEvent("dddd"))

	assert.Equal(t, "Global function says: a"+
		"Static member function says: b"+
		"Instance member function says: c"+
		"Function object says: dddd", buf.String())
}

func TestSpeaker_IgnoresValue(t *testing.T) {
	capture(t)

	s := demo.NewSpeaker(2)
	var l types.Listener = types.ListenerFunc(s.InstanceListener)
	for _, v := range []string{"", "Testing", "something else"} {
		assert.Equal(t, 2, l.OnEvent(v))
	}
}

func TestNew_Fire(t *testing.T) {
	capture(t)

	d := demo.New(2)
	require.Equal(t, 5, d.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 7}, d.Fire("Testing"))
}

func TestNew_Report(t *testing.T) {
	buf := capture(t)

	d := demo.New(5, event.Output(buf))
	d.Fire("Hi")

	expected := "Dispatching with value: Hi\n" +
		"Global function says: Hi - Returned 0\n" +
		"Static member function says: Hi - Returned 1\n" +
		"Instance member function says: Hi - Returned 5\n" +
		"Lambda function says: Hi - Returned 3\n" +
		"Function object says: Hi - Returned 2\n"
	assert.Equal(t, expected, buf.String())
}
