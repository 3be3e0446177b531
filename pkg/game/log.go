package game

// recentLimit bounds the recent-actions log.
const recentLimit = 4

// ActionLog keeps the most recent action lines, newest first. Empty
// lines and exact repeats of the newest entry are dropped; the oldest
// entry falls off past the limit.
type ActionLog []string

// Add records a line at the front. It reports whether the line was
// kept.
func (l *ActionLog) Add(line string) bool {
	if line == "" {
		return false
	}
	if len(*l) > 0 && (*l)[0] == line {
		return false
	}
	*l = append(ActionLog{line}, *l...)
	if len(*l) > recentLimit {
		*l = (*l)[:recentLimit]
	}
	return true
}

// Entries returns a copy of the log, newest first.
func (l ActionLog) Entries() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}
