// Package window runs a game in a desktop window through Ebiten.
// Unlike the terminal, Ebiten reports real key state, so movement is read
// as held keys every tick.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

// Debug font cell size, used to centre overlay text.
const (
	glyphW = 6
	glyphH = 16
)

var background = color.RGBA{0x10, 0x12, 0x18, 0xff}

// bindings maps keyboard keys to game actions.
var bindings = []core.KeyBinding[ebiten.Key]{
	{Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, Action: core.ActionUp, Held: true},
	{Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, Action: core.ActionDown, Held: true},
	{Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, Action: core.ActionLeft, Held: true},
	{Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, Action: core.ActionRight, Held: true},
	{Keys: []ebiten.Key{ebiten.KeySpace}, Action: core.ActionLaunch},
	{Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, Action: core.ActionPause},
	{Keys: []ebiten.Key{ebiten.KeyR}, Action: core.ActionRestart},
	{Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyB}, Action: core.ActionQuit},
}

// Window implements ebiten.Game around an arcade game.
type Window struct {
	game    registry.Game
	store   *storage.Store
	config  core.RuntimeConfig
	logger  *log.Logger
	width   int
	height  int
	started time.Time
	state   core.GameState
	saved   bool
}

// New creates a window frontend and resets the game.
// A nil logger discards game events.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Window{
		game:   game,
		store:  store,
		config: cfg,
		logger: logger.With("game", game.ID(), "frontend", "window"),
	}
	w.reset()
	return w
}

func (w *Window) reset() {
	w.game.Reset(w.config)
	scene := w.game.Scene()
	w.width, w.height = int(scene.Width), int(scene.Height)
	w.state = w.game.State()
	w.started = time.Now()
	w.saved = false
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	in := core.PollBindings(bindings, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)

	if in.Has(core.ActionQuit) {
		w.saveResult()
		return ebiten.Termination
	}

	if in.Has(core.ActionRestart) {
		w.saveResult()
		w.reset()
		w.logger.Debug("game restarted")
		return nil
	}

	result := w.game.Step(in, 1/float64(ebiten.TPS()))
	w.state = result.State
	for _, ev := range result.Events {
		w.logger.Debug(ev.Kind(), "event", ev)
	}
	return nil
}

// Draw renders the current scene.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	scene := w.game.Scene()
	b := screen.Bounds()
	vp := core.NewViewport(scene.Width, scene.Height, b.Dx(), b.Dy())

	for _, sp := range scene.Sprites {
		drawSprite(screen, vp, sp)
	}

	for _, l := range scene.Labels {
		x, y := vp.ToScreen(l.X, l.Y)
		ebitenutil.DebugPrintAt(screen, l.Text, int(x)+2, int(y))
	}

	top := (b.Dy() - len(scene.Overlay)*glyphH) / 2
	for i, line := range scene.Overlay {
		x := (b.Dx() - len(line)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*glyphH)
	}
}

func drawSprite(dst *ebiten.Image, vp core.Viewport, sp core.Sprite) {
	r, g, b := sp.Color.RGB()
	clr := color.RGBA{r, g, b, 0xff}
	cx, cy := vp.ToScreen(sp.X, sp.Y)

	if sp.Kind == core.ShapeCircle {
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(vp.Scale(sp.Radius)), clr, true)
		return
	}

	// Zero-width rects (the Pong net) still get a one-pixel line.
	w := max(vp.Scale(2*sp.HalfW), 1)
	h := max(vp.Scale(2*sp.HalfH), 1)
	vector.DrawFilledRect(dst, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), clr, false)
}

// Layout keeps the logical world size; Ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// saveResult records the session once.
func (w *Window) saveResult() {
	if w.saved || w.store == nil {
		return
	}
	w.saved = true

	difficulty, err := config.ParseDifficulty(w.config.Difficulty)
	if err != nil {
		difficulty = config.DifficultyNormal
	}

	match, err := w.store.RecordSession(storage.Session{
		GameID:     w.game.ID(),
		Difficulty: string(difficulty),
		State:      w.state,
		Played:     time.Since(w.started),
	})
	if err != nil {
		w.logger.Warn("could not save session", "error", err)
		return
	}
	if match != nil {
		w.logger.Info("match saved", "match", match.MatchID, "outcome", match.Outcome())
	}
}

// Run opens a window and plays the game until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, store, cfg, logger)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
