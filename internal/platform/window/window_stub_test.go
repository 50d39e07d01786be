//go:build !cgo && !windows && !darwin

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/games/tetris"
)

func TestRunWithoutBackend(t *testing.T) {
	err := Run(tetris.New(), core.DefaultConfig(), Options{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
