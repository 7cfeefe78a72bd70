package game

// EventLog keeps the most recent event lines for the diagnostic side panel.
// Fixed-capacity ring; oldest lines fall off.
type EventLog struct {
	lines []string
	cap   int
	head  int
	count int
}

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = 64
	}
	return &EventLog{
		lines: make([]string, capacity),
		cap:   capacity,
	}
}

// Attach subscribes the log to every event on the bus.
func (l *EventLog) Attach(bus *EventBus) {
	bus.SubscribeAll(func(e Event) {
		l.Push(e.Describe())
	})
}

func (l *EventLog) Push(line string) {
	l.lines[l.head] = line
	l.head = (l.head + 1) % l.cap
	if l.count < l.cap {
		l.count++
	}
}

func (l *EventLog) Len() int { return l.count }

// Tail returns up to n lines, oldest first.
func (l *EventLog) Tail(n int) []string {
	if n > l.count {
		n = l.count
	}
	out := make([]string, 0, n)
	start := l.head - n
	if start < 0 {
		start += l.cap
	}
	for i := 0; i < n; i++ {
		out = append(out, l.lines[(start+i)%l.cap])
	}
	return out
}
