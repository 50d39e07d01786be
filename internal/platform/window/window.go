//go:build cgo || windows || darwin

package window

import (
	_ "embed"
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/input"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/render"
)

//go:embed quad.kage
var quadShader []byte

const hudLineHeight = 16

// Run opens a window and drives the game until Escape is pressed or the
// window is closed. It returns an error only if the window could not run.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	qr, ok := game.(registry.QuadRenderer)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWindowed, game.ID())
	}
	opts = opts.resolve(qr, cfg)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "window",
	})

	r := newRunner(game, qr, opts, logger)
	game.Reset(runtimeConfig(cfg, opts.TPS))

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(opts.TPS)

	logger.Info("starting", "game", game.ID(), "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height), "tps", opts.TPS)
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	logger.Info("closed", "game", game.ID(), "score", game.State().Score)
	return nil
}

type runner struct {
	game    registry.Game
	quads   registry.QuadRenderer
	opts    Options
	poller  *input.Poller[key]
	batch   *render.Batch
	indices []uint16
	verts   []ebiten.Vertex

	shader *ebiten.Shader
	white  *ebiten.Image
}

func newRunner(game registry.Game, qr registry.QuadRenderer, opts Options, logger *log.Logger) *runner {
	r := &runner{
		game:  game,
		quads: qr,
		opts:  opts,
		poller: input.NewPoller(bindings(
			key(ebiten.KeyArrowLeft),
			key(ebiten.KeyArrowRight),
			key(ebiten.KeyArrowDown),
			key(ebiten.KeyArrowUp),
			key(ebiten.KeyZ),
			key(ebiten.KeyP),
			key(ebiten.KeyR),
		)...),
		batch:   render.NewBatch(256),
		indices: render.QuadIndices(render.MaxQuads),
	}

	shader, err := ebiten.NewShader(quadShader)
	if err != nil {
		// Keep running with the plain triangle path.
		logger.Error("shader compile failed, falling back to DrawTriangles", "error", err)
	} else {
		r.shader = shader
	}

	// DrawTriangles samples its source; a white texel keeps vertex colors as-is.
	img := ebiten.NewImage(3, 3)
	img.Fill(image.White)
	r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return r
}

func (r *runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	frame := r.poller.Poll(func(k key) int {
		return inpututil.KeyPressDuration(ebiten.Key(k))
	})
	r.game.Step(frame)
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.batch.Reset()
	r.quads.RenderQuads(r.batch)

	r.verts = r.verts[:0]
	for _, v := range r.batch.Vertices() {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 1, SrcY: 1,
			ColorR: v.R, ColorG: v.G, ColorB: v.B, ColorA: 1,
		})
	}

	if n := r.batch.IndexCount(); n > 0 {
		if r.shader != nil {
			screen.DrawTrianglesShader(r.verts, r.indices[:n], r.shader, nil)
		} else {
			screen.DrawTriangles(r.verts, r.indices[:n], r.white, nil)
		}
	}

	for i, line := range r.quads.HUD() {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+i*hudLineHeight)
	}
}

func (r *runner) Layout(_, _ int) (int, int) {
	return r.opts.Width, r.opts.Height
}
