package event_test

import (
	"testing"

	"github.com/yaoapp/callbacks/event"
)

func benchmarkFire(b *testing.B, n int) {
	d := event.New()
	for i := 0; i < n; i++ {
		v := i
		d.RegisterFunc(func(string) int { return v })
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Fire("Testing")
	}
}

func BenchmarkFire_1(b *testing.B)   { benchmarkFire(b, 1) }
func BenchmarkFire_16(b *testing.B)  { benchmarkFire(b, 16) }
func BenchmarkFire_256(b *testing.B) { benchmarkFire(b, 256) }
