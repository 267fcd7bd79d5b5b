// Package narrative holds the session transcript shown next to the sheet
package narrative

import "time"

// Role says who wrote an entry
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// WelcomeText opens every new session
const WelcomeText = "🏹 **Aegis Online.** Ready for adventure."

// Entry is one line of the transcript
type Entry struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValid reports whether the entry can be appended
func (e Entry) IsValid() bool {
	return (e.Role == RoleUser || e.Role == RoleAssistant) && e.Text != ""
}

// Welcome builds the opening assistant entry
func Welcome(id string, at time.Time) Entry {
	return Entry{ID: id, Role: RoleAssistant, Text: WelcomeText, CreatedAt: at}
}

// Log is an append-only transcript. Insertion order is display order.
type Log struct {
	entries []Entry
}

// NewLog creates a log holding the given entries in order
func NewLog(entries ...Entry) *Log {
	return &Log{entries: append([]Entry(nil), entries...)}
}

// Append adds an entry at the end
func (l *Log) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

// Len returns the number of entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of every entry, oldest first
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Recent returns up to the last n entries, oldest first. Rendering only; nothing is dropped.
func (l *Log) Recent(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	return append([]Entry(nil), l.entries[start:]...)
}
