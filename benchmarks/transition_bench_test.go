// Package benchmarks provides performance benchmarks for the picker's
// navigation and selection operations.
package benchmarks

import (
	"testing"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/internal/fsm"
)

func BenchmarkMoveFocusByDays(b *testing.B) {
	p := NewPicker("")
	p.FocusWrapper()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			p.MoveFocusByDays(7)
		} else {
			p.MoveFocusByDays(-6)
		}
	}
}

func BenchmarkPageUpDown(b *testing.B) {
	p := NewPicker("")
	p.FocusWrapper()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			p.PageDown()
		} else {
			p.PageUp()
		}
	}
}

func BenchmarkHandleKey(b *testing.B) {
	for _, loc := range []string{"", "ar"} {
		name := loc
		if name == "" {
			name = "en"
		}
		b.Run(name, func(b *testing.B) {
			p := NewPicker(loc)
			p.FocusWrapper()
			keys := []datepickerx.Key{
				datepickerx.KeyArrowRight, datepickerx.KeyArrowDown,
				datepickerx.KeyArrowLeft, datepickerx.KeyArrowUp,
				datepickerx.KeySpace,
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p.HandleKey(keys[i%len(keys)])
			}
		})
	}
}

func BenchmarkCommitSelection(b *testing.B) {
	p := NewPicker("")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.CommitSelection(i%28+1, 3, 2024)
	}
}

func BenchmarkWrapperTransition(b *testing.B) {
	p := NewPicker("")
	ptr := datepickerx.MouseButton(0)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.FocusWrapper()
		p.WrapperPointerDown(ptr)
		p.WrapperPointerUp(ptr)
		p.BlurWrapper()
	}
}

func BenchmarkMachineSend(b *testing.B) {
	bld := fsm.NewBuilder("a")
	tick := bld.Event("tick")
	bld.State("a").On("tick", "b", nil, nil)
	bld.State("b").On("tick", "a", nil, nil)
	m, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}
	if err := m.Start(); err != nil {
		b.Fatal(err)
	}
	evt := fsm.Event{ID: tick}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.Send(evt); err != nil {
			b.Fatal(err)
		}
	}
}
