//go:build !cgo && !windows && !darwin

package window

import (
	"errors"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

// ErrUnavailable is returned where ebiten needs cgo (Linux and BSD) and the
// build has it disabled.
var ErrUnavailable = errors.New("window: built without cgo, no window backend on this platform")

// Run reports that no window backend is available.
func Run(game registry.Game, _ core.RuntimeConfig, _ Options) error {
	if _, ok := game.(registry.QuadRenderer); !ok {
		return ErrNotWindowed
	}
	return ErrUnavailable
}
