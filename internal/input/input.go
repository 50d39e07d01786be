// Package input turns per-key press durations into a core.InputFrame.
//
// Platforms that poll a keyboard every tick (the window runner) describe
// their keys as bindings and let a Poller build the frame. The package does
// not know about any concrete keyboard API: a binding's key type is a type
// parameter and durations come from a caller-supplied function.
package input

import "github.com/vovakirdan/block-arcade/internal/core"

// Mode decides how a key's press duration maps to an action.
type Mode uint8

const (
	// ModeRepeat fires on the first tick, then auto-repeats while held.
	ModeRepeat Mode = iota
	// ModeLevel is set on every tick the key is held. Games debounce it.
	ModeLevel
	// ModePress fires once on the tick the key goes down.
	ModePress
)

// Repeat is an auto-repeat schedule in ticks.
type Repeat struct {
	Delay    int // ticks before the first repeat
	Interval int // ticks between repeats
}

// DefaultRepeat matches a typical keyboard at 60 ticks per second.
var DefaultRepeat = Repeat{Delay: 12, Interval: 3}

// Fire reports whether a key held for d ticks fires this tick.
// d is 1 on the tick the key went down and 0 when it is released.
func (r Repeat) Fire(d int) bool {
	switch {
	case d <= 0:
		return false
	case d == 1:
		return true
	case r.Interval <= 0 || d <= r.Delay:
		return false
	default:
		return (d-r.Delay)%r.Interval == 0
	}
}

// Binding maps any of Keys to an action.
type Binding[K comparable] struct {
	Keys   []K
	Action core.Action
	Mode   Mode
}

// Poller builds input frames from a fixed binding set.
type Poller[K comparable] struct {
	bindings []Binding[K]
	repeat   Repeat
}

// NewPoller creates a poller using the default repeat schedule.
func NewPoller[K comparable](bindings ...Binding[K]) *Poller[K] {
	return &Poller[K]{bindings: bindings, repeat: DefaultRepeat}
}

// SetRepeat replaces the auto-repeat schedule.
func (p *Poller[K]) SetRepeat(r Repeat) {
	p.repeat = r
}

// Poll returns the frame for this tick. duration reports for how many
// ticks a key has been held, 0 if it is up.
func (p *Poller[K]) Poll(duration func(K) int) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range p.bindings {
		for _, k := range b.Keys {
			if p.fires(b.Mode, duration(k)) {
				frame.Set(b.Action)
				break
			}
		}
	}
	return frame
}

func (p *Poller[K]) fires(m Mode, d int) bool {
	switch m {
	case ModeLevel:
		return d > 0
	case ModePress:
		return d == 1
	default:
		return p.repeat.Fire(d)
	}
}
