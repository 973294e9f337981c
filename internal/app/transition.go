package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The sidebar collapse/expand animation steps the element's `left`
// between 0 and -width over the page's transition duration. Frames stay
// inside the UI; only the final settled state reaches the event bus, as
// a transition-end.
const frameInterval = 40 * time.Millisecond

// timeNow is a test seam.
var timeNow = time.Now

type transitionTickMsg struct{}

type transition struct {
	active bool
	from   float64
	to     float64
	start  time.Time
	dur    time.Duration
}

func (t *transition) begin(from, to float64, dur time.Duration) tea.Cmd {
	t.active = true
	t.from = from
	t.to = to
	t.start = timeNow()
	t.dur = dur
	if t.dur <= 0 {
		t.dur = time.Millisecond
	}
	return tickTransition()
}

// step returns the current interpolated value and whether the
// transition has finished.
func (t *transition) step(now time.Time) (value float64, done bool) {
	elapsed := now.Sub(t.start)
	if elapsed >= t.dur {
		t.active = false
		return t.to, true
	}
	frac := float64(elapsed) / float64(t.dur)
	return t.from + (t.to-t.from)*frac, false
}

func tickTransition() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return transitionTickMsg{}
	})
}

func pxString(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
