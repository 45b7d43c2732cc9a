package core

import (
	"testing"
	"time"
)

func TestCadenceFiresImmediatelyThenWaits(t *testing.T) {
	c := NewCadence(20 * time.Millisecond)
	start := time.Unix(100, 0)

	if !c.Due(start) {
		t.Fatal("fresh cadence should fire immediately")
	}
	if c.Due(start.Add(19 * time.Millisecond)) {
		t.Fatal("cadence fired before the delay elapsed")
	}
	if !c.Due(start.Add(20 * time.Millisecond)) {
		t.Fatal("cadence should fire once the delay elapsed")
	}
}

func TestCadenceNeverBursts(t *testing.T) {
	c := NewCadence(20 * time.Millisecond)
	start := time.Unix(100, 0)
	c.Due(start)

	late := start.Add(time.Second)
	if !c.Due(late) {
		t.Fatal("late call should fire")
	}
	if c.Due(late) {
		t.Fatal("a late host must not receive a burst of generations")
	}
}

func TestCadenceReset(t *testing.T) {
	c := NewCadence(time.Hour)
	now := time.Unix(100, 0)
	c.Due(now)
	if c.Due(now.Add(time.Minute)) {
		t.Fatal("cadence fired early")
	}
	c.Reset()
	if !c.Due(now.Add(time.Minute)) {
		t.Fatal("Reset should arm the cadence")
	}
}

func TestCadenceDefaultDelay(t *testing.T) {
	if got := NewCadence(0).Delay(); got != DefaultDelay {
		t.Fatalf("Delay() = %v, want %v", got, DefaultDelay)
	}
}
