package ux

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerSingleCall(t *testing.T) {
	var called int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Call(func() { atomic.AddInt32(&called, 1) })
	time.Sleep(120 * time.Millisecond)

	if atomic.LoadInt32(&called) != 1 {
		t.Errorf("expected 1 call, got %d", called)
	}
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	var called int32
	var last int32
	d := NewDebouncer(50 * time.Millisecond)

	for i := 1; i <= 10; i++ {
		v := int32(i)
		d.Call(func() {
			atomic.StoreInt32(&last, v)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(120 * time.Millisecond)

	if atomic.LoadInt32(&called) != 1 {
		t.Errorf("expected 1 trailing call, got %d", called)
	}
	if atomic.LoadInt32(&last) != 10 {
		t.Errorf("expected last value 10, got %d", last)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var called int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Call(func() { atomic.AddInt32(&called, 1) })
	d.Cancel()
	d.Cancel() // repeated cancel is safe

	time.Sleep(120 * time.Millisecond)
	if atomic.LoadInt32(&called) != 0 {
		t.Errorf("expected 0 calls after cancel, got %d", called)
	}
}

func TestDebouncerCancelBeforeAnyCall(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	d.Cancel() // must not panic
}
