package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOnInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(500 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock = clock.Add(200 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not fire before the interval elapses")
	}
	clock = clock.Add(300 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should fire once the interval elapses")
	}
	if fs.ShouldStep() {
		t.Fatal("should not fire twice for one interval")
	}
}

func TestFixedStepZeroAlwaysFires(t *testing.T) {
	fs := NewFixedStep(0)
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("call %d: zero step should always fire", i)
		}
	}
	fs.SetStep(-time.Second)
	if fs.Step() != 0 {
		t.Fatalf("negative step should clamp to 0, got %v", fs.Step())
	}
}
