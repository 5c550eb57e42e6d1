package logger

import "sync"

// Entry is a log record captured by MemoryLogger
type Entry struct {
	Level     LogLevel
	Component string
	Message   string
	Err       error
	Fields    map[string]interface{}
}

// MemoryLogger keeps entries in memory so callers can inspect what was logged.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (m *MemoryLogger) Debug(component, message string, fields map[string]interface{}) {
	m.add(Entry{Level: DebugLevel, Component: component, Message: message, Fields: fields})
}

func (m *MemoryLogger) Info(component, message string, fields map[string]interface{}) {
	m.add(Entry{Level: InfoLevel, Component: component, Message: message, Fields: fields})
}

func (m *MemoryLogger) Warning(component, message string, fields map[string]interface{}) {
	m.add(Entry{Level: WarnLevel, Component: component, Message: message, Fields: fields})
}

func (m *MemoryLogger) Error(component string, err error, fields map[string]interface{}) {
	m.add(Entry{Level: ErrorLevel, Component: component, Message: "operation failed", Err: err, Fields: fields})
}

func (m *MemoryLogger) add(e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

// Entries returns a copy of everything logged so far.
func (m *MemoryLogger) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Count returns the number of entries logged at level.
func (m *MemoryLogger) Count(level LogLevel) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
