package combat

import "fmt"

// MaxLogLines is the battle log capacity. Appending past it drops the
// oldest line.
const MaxLogLines = 8

// BattleLog is a bounded FIFO of narration lines. The zero value is ready
// to use.
type BattleLog struct {
	lines []string
}

// Add appends a line, evicting the oldest when the log is full.
func (l *BattleLog) Add(line string) {
	if len(l.lines) < MaxLogLines {
		l.lines = append(l.lines, line)
		return
	}
	copy(l.lines, l.lines[1:])
	l.lines[MaxLogLines-1] = line
}

// Addf appends a formatted line.
func (l *BattleLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Lines returns the retained lines, oldest first.
func (l *BattleLog) Lines() []string {
	return l.lines
}

// Len returns the number of retained lines.
func (l *BattleLog) Len() int {
	return len(l.lines)
}

// Clear discards all lines.
func (l *BattleLog) Clear() {
	l.lines = l.lines[:0]
}
