package login

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const (
	revealDelay   = 300 * time.Millisecond
	revealStagger = 100 * time.Millisecond
)

type revealTickMsg struct{}

func scheduleReveal(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return revealTickMsg{} })
}

// reveal staggers the appearance of the card's elements on startup.
type reveal struct {
	shown int
	total int
}

func newReveal(total int, animated bool) reveal {
	r := reveal{total: total}
	if !animated {
		r.shown = total
	}
	return r
}

func (r reveal) start() tea.Cmd {
	if r.done() {
		return nil
	}
	return scheduleReveal(revealDelay)
}

func (r *reveal) advance() tea.Cmd {
	if r.done() {
		return nil
	}
	r.shown++
	if r.done() {
		return nil
	}
	return scheduleReveal(revealStagger)
}

func (r reveal) visible(i int) bool { return i < r.shown }
func (r reveal) done() bool         { return r.shown >= r.total }
