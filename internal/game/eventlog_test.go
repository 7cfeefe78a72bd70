package game

import (
	"reflect"
	"strings"
	"testing"
)

func TestEventLogRingWraps(t *testing.T) {
	l := NewEventLog(3)

	l.Push("a")
	l.Push("b")
	if got := l.Tail(10); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Tail = %v, want [a b]", got)
	}

	l.Push("c")
	l.Push("d") // evicts "a"

	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3", l.Len())
	}
	if got := l.Tail(3); !reflect.DeepEqual(got, []string{"b", "c", "d"}) {
		t.Errorf("Tail = %v, want [b c d]", got)
	}
	if got := l.Tail(2); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Errorf("Tail(2) = %v, want [c d]", got)
	}
}

func TestEventLogAttach(t *testing.T) {
	bus := NewEventBus()
	l := NewEventLog(16)
	l.Attach(bus)

	bus.Emit(Event{Type: EventVehicleSpawned, Frame: 3, Vehicle: 1, Row: 299, Col: 2})
	bus.Emit(Event{Type: EventWeatherChanged, Frame: 9, Vehicle: -1, Weather: WeatherRain})

	lines := l.Tail(10)
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "car 1") || !strings.Contains(lines[0], "lane 2") {
		t.Errorf("spawn line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "rain") {
		t.Errorf("weather line = %q", lines[1])
	}
}

func TestEventDescribe(t *testing.T) {
	cases := []struct {
		e    Event
		want string
	}{
		{Event{Type: EventVehicleExited, Frame: 5, Vehicle: 3}, "[5] car 3 exits"},
		{Event{Type: EventLaneChange, Frame: 7, Vehicle: 2, Col: 1}, "[7] car 2 merges to lane 1"},
		{Event{Type: EventFaultSpawned, Frame: 8, Vehicle: -1, Row: 40, Col: 2, Fault: FaultIce}, "[8] ice at r40 l2"},
		{Event{Type: EventFaultHit, Frame: 9, Vehicle: 4, Row: 12, Fault: FaultPothole}, "[9] car 4 hits pothole at r12"},
		{Event{Type: EventEgoChanged, Frame: 11, Vehicle: 6}, "[11] ego -> car 6"},
	}
	for _, tc := range cases {
		if got := tc.e.Describe(); got != tc.want {
			t.Errorf("Describe(%v) = %q, want %q", tc.e.Type, got, tc.want)
		}
	}
}
