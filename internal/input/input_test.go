package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-arcade/internal/core"
)

func TestRepeatFire(t *testing.T) {
	r := Repeat{Delay: 4, Interval: 2}

	var fired []int
	for d := 0; d <= 10; d++ {
		if r.Fire(d) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, 6, 8, 10}, fired)
}

func TestRepeatWithoutInterval(t *testing.T) {
	r := Repeat{Delay: 4}
	assert.True(t, r.Fire(1))
	for d := 2; d < 50; d++ {
		require.False(t, r.Fire(d), "tick %d", d)
	}
}

type keyState map[string]int

func (k keyState) duration(key string) int { return k[key] }

func testPoller() *Poller[string] {
	p := NewPoller(
		Binding[string]{Keys: []string{"left", "a"}, Action: core.ActionLeft, Mode: ModeRepeat},
		Binding[string]{Keys: []string{"z"}, Action: core.ActionRotate, Mode: ModeLevel},
		Binding[string]{Keys: []string{"p"}, Action: core.ActionPause, Mode: ModePress},
	)
	p.SetRepeat(Repeat{Delay: 4, Interval: 2})
	return p
}

func TestPollModes(t *testing.T) {
	p := testPoller()

	tests := []struct {
		name  string
		keys  keyState
		want  []core.Action
		unset []core.Action
	}{
		{name: "nothing held", keys: keyState{}, unset: []core.Action{core.ActionLeft, core.ActionRotate, core.ActionPause}},
		{name: "left down", keys: keyState{"left": 1}, want: []core.Action{core.ActionLeft}},
		{name: "left waiting for repeat", keys: keyState{"left": 3}, unset: []core.Action{core.ActionLeft}},
		{name: "left repeats", keys: keyState{"left": 6}, want: []core.Action{core.ActionLeft}},
		{name: "alternate key", keys: keyState{"a": 1}, want: []core.Action{core.ActionLeft}},
		{name: "rotate held long", keys: keyState{"z": 40}, want: []core.Action{core.ActionRotate}},
		{name: "pause edge", keys: keyState{"p": 1}, want: []core.Action{core.ActionPause}},
		{name: "pause held", keys: keyState{"p": 2}, unset: []core.Action{core.ActionPause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := p.Poll(tt.keys.duration)
			for _, a := range tt.want {
				assert.True(t, frame.Has(a), "expected %s", a)
			}
			for _, a := range tt.unset {
				assert.False(t, frame.Has(a), "unexpected %s", a)
			}
		})
	}
}

func TestHeldRotateFiresOnceThroughEdgeDetector(t *testing.T) {
	p := testPoller()
	var edge core.EdgeDetector

	rotations := 0
	for d := 1; d <= 30; d++ {
		frame := p.Poll(keyState{"z": d}.duration)
		if edge.Update(frame.Has(core.ActionRotate)) {
			rotations++
		}
	}
	assert.Equal(t, 1, rotations)

	frame := p.Poll(keyState{}.duration)
	assert.False(t, edge.Update(frame.Has(core.ActionRotate)))
	frame = p.Poll(keyState{"z": 1}.duration)
	assert.True(t, edge.Update(frame.Has(core.ActionRotate)))
}
