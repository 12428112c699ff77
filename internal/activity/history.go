package activity

import "time"

// Level classifies an event like a message dialog would.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Event is a single recorded action outcome.
type Event struct {
	Time    time.Time
	Level   Level
	Message string
}

// History keeps the most recent events up to a fixed capacity.
type History struct {
	length int
	data   []Event
	pos    int
	count  int
}

// NewHistory creates a history with the given capacity. A capacity below one
// is raised to one.
func NewHistory(length int) *History {
	// check length
	if length < 1 {
		length = 1
	}

	return &History{
		length: length,
		data:   make([]Event, length*2),
	}
}

// Add records an event stamped with the current time.
func (h *History) Add(level Level, message string) Event {
	// prepare event
	event := Event{
		Time:    time.Now(),
		Level:   level,
		Message: message,
	}

	// write values
	h.data[h.pos] = event
	h.data[h.length+h.pos] = event

	// increment position
	h.pos++
	if h.pos >= h.length {
		h.pos = 0
	}

	// increment count
	if h.count < h.length {
		h.count++
	}

	return event
}

// Events returns the recorded events, oldest first.
func (h *History) Events() []Event {
	end := h.length + h.pos
	return append([]Event(nil), h.data[end-h.count:end]...)
}

// Last returns the most recent event.
func (h *History) Last() (Event, bool) {
	// check count
	if h.count == 0 {
		return Event{}, false
	}

	return h.data[h.length+h.pos-1], true
}

func (h *History) Len() int {
	return h.count
}
