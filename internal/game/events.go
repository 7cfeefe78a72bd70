package game

import "fmt"

type EventType int

const (
	EventVehicleSpawned EventType = iota
	EventVehicleExited
	EventLaneChange
	EventFaultSpawned
	EventFaultHit
	EventWeatherChanged
	EventEgoChanged
)

type Event struct {
	Type     EventType
	Frame    uint64
	Vehicle  int // vehicle ID, -1 when not applicable
	Row, Col int
	Fault    FaultKind
	Weather  WeatherMode
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll attaches a handler to every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventVehicleSpawned; t <= EventEgoChanged; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// Describe formats an event as a log panel line.
func (e Event) Describe() string {
	switch e.Type {
	case EventVehicleSpawned:
		return fmt.Sprintf("[%d] car %d enters lane %d", e.Frame, e.Vehicle, e.Col)
	case EventVehicleExited:
		return fmt.Sprintf("[%d] car %d exits", e.Frame, e.Vehicle)
	case EventLaneChange:
		return fmt.Sprintf("[%d] car %d merges to lane %d", e.Frame, e.Vehicle, e.Col)
	case EventFaultSpawned:
		return fmt.Sprintf("[%d] %s at r%d l%d", e.Frame, e.Fault, e.Row, e.Col)
	case EventFaultHit:
		return fmt.Sprintf("[%d] car %d hits %s at r%d", e.Frame, e.Vehicle, e.Fault, e.Row)
	case EventWeatherChanged:
		return fmt.Sprintf("[%d] weather: %s", e.Frame, e.Weather)
	case EventEgoChanged:
		return fmt.Sprintf("[%d] ego -> car %d", e.Frame, e.Vehicle)
	}
	return fmt.Sprintf("[%d] event %d", e.Frame, e.Type)
}
