package engine

import "fmt"

// MaxLogEntries is the number of messages the log retains.
const MaxLogEntries = 8

// MessageLog is a bounded FIFO of narration lines. When full, adding a
// message drops the oldest one.
type MessageLog struct {
	entries []string
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{entries: make([]string, 0, MaxLogEntries)}
}

// Add appends a message.
func (l *MessageLog) Add(msg string) {
	if len(l.entries) == MaxLogEntries {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:MaxLogEntries-1]
	}
	l.entries = append(l.entries, msg)
}

// Addf appends a formatted message.
func (l *MessageLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns a copy of the messages, oldest first.
func (l *MessageLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of retained messages.
func (l *MessageLog) Len() int {
	return len(l.entries)
}

// Last returns the newest message, or "" for an empty log.
func (l *MessageLog) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}
