package analysis

import "fmt"

// trace accumulates the ordered audit log each algorithm returns alongside
// its result: one line per visit, edge exploration, back-edge detection, and
// discovery, in the order events happen.
type trace struct {
	lines []string
}

func (t *trace) addf(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}
