package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"gloomdeep/pkg/engine/input"
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/renderer"
	"gloomdeep/pkg/game/session"
	"gloomdeep/pkg/game/state"
)

// keyCodes maps Ebiten keys to the shared binding codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyY:          "y",
	ebiten.KeyU:          "u",
	ebiten.KeyB:          "b",
	ebiten.KeyN:          "n",
	ebiten.KeyO:          "o",
	ebiten.KeyG:          "G",
	ebiten.KeyPeriod:     ".",
	ebiten.KeyComma:      ",",
	ebiten.KeyM:          "M",
	ebiten.KeyEscape:     "escape",
	ebiten.KeySpace:      "space",
	ebiten.KeyQ:          "q",
}

// Renderer is the Ebiten-based renderer. It owns the window loop and
// drives the session from Update, so it also implements ebiten.Game.
type Renderer struct {
	sess *session.Session

	tileSize int
	lastTick time.Time

	fontSource         *text.GoTextFaceSource
	cachedTileFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace
	cachedTileFontSize float64
}

// New creates a new Ebiten renderer over a session
func New(sess *session.Session) *Renderer {
	return &Renderer{
		sess:     sess,
		tileSize: defaultTileSize,
	}
}

// Init initializes the window and fonts
func (e *Renderer) Init() {
	e.fontSource = loadFont()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Gloomdeep")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *Renderer) Run() error {
	e.lastTick = time.Now()
	return ebiten.RunGame(e)
}

// Clear is a no-op: Ebiten clears the frame in Draw
func (e *Renderer) Clear() {}

// RenderFrame is a no-op: Ebiten renders in Draw on its own clock
func (e *Renderer) RenderFrame(g *state.Game, ctrl *autopilot.Controller) {}

// StyleText returns text unchanged; color is applied at draw time
func (e *Renderer) StyleText(str string, style renderer.TextStyle) string {
	return str
}

// FormatText formats a message without terminal markup
func (e *Renderer) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}

// ShowMessage is a no-op: messages render from the game log each frame
func (e *Renderer) ShowMessage(msg string) {}

// GetViewportSize returns the viewport dimensions in tiles
func (e *Renderer) GetViewportSize() (rows, cols int) {
	w, h := windowWidth, windowHeight-statusBarHeight-messagePaneRows*messageLineGap
	return h / e.tileSize, w / e.tileSize
}

// Update handles input and advances autopilot pacing once per frame
func (e *Renderer) Update() error {
	now := time.Now()
	dt := now.Sub(e.lastTick)
	e.lastTick = now

	if e.sess.Active() {
		e.sess.Tick(dt)
	}

	// Zoom is handled here rather than through bindings; it never reaches
	// the game
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
	}

	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		raw := input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: now}
		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		if intent.Action == input.ActionNone {
			continue
		}
		if e.sess.HandleAction(intent.Action) {
			return ebiten.Termination
		}
	}

	return nil
}

// Draw renders the map, status bar and message pane
func (e *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.drawMap(screen)
	e.drawStatusBar(screen)
	e.drawMessages(screen)
}

// Layout returns the game's logical screen size
func (e *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// drawMap renders the tile viewport centered on the player
func (e *Renderer) drawMap(screen *ebiten.Image) {
	g := e.sess.Game
	viewRows, viewCols := e.GetViewportSize()

	mapHeight := viewRows * e.tileSize
	vector.DrawFilledRect(screen, 0, 0, float32(windowWidth), float32(mapHeight), colorMapBackground, false)

	startRow := g.Player.Row - viewRows/2
	startCol := g.Player.Col - viewCols/2

	for vRow := 0; vRow < viewRows; vRow++ {
		for vCol := 0; vCol < viewCols; vCol++ {
			row, col := startRow+vRow, startCol+vCol
			glyph, style := renderer.Glyph(g, row, col)
			if glyph == renderer.IconVoid {
				continue
			}

			x := vCol * e.tileSize
			y := vRow * e.tileSize

			bg := colorFloorBg
			if glyph == renderer.IconWall {
				bg = colorWallBg
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.tileSize), float32(e.tileSize), bg, false)

			e.drawTileGlyph(screen, glyph, x, y, styleColor(style))
		}
	}
}

// drawStatusBar renders hit points, purse, effects and the autopilot mode
func (e *Renderer) drawStatusBar(screen *ebiten.Image) {
	g := e.sess.Game
	viewRows, _ := e.GetViewportSize()
	y := viewRows * e.tileSize

	vector.DrawFilledRect(screen, 0, float32(y), float32(windowWidth), statusBarHeight, colorPanelBackground, false)

	status := fmt.Sprintf("Depth %d  Turn %d  HP %d/%d  Gold %d",
		g.Depth, g.Turn, g.Player.HP, g.Player.MaxHP, g.Player.Gold)
	if g.Opts.HungerEnabled && g.Player.Hunger >= entities.HungerHungry {
		if g.Player.Hunger >= entities.HungerStarving {
			status += "  " + gotext.Get("Starving")
		} else {
			status += "  " + gotext.Get("Hungry")
		}
	}
	if g.Player.Poison > 0 {
		status += "  " + gotext.Get("Poisoned")
	}
	if g.Player.Web > 0 {
		status += "  " + gotext.Get("Webbed")
	}
	if g.Player.Confusion > 0 {
		status += "  " + gotext.Get("Confused")
	}
	if e.sess.Ctrl.Active() {
		status += fmt.Sprintf("  [%s, %d steps left]", e.sess.Ctrl.Mode(), len(e.sess.Ctrl.Remaining()))
	}

	e.drawUIText(screen, status, 8, y+6, colorText)
}

// drawMessages renders the message log under the status bar
func (e *Renderer) drawMessages(screen *ebiten.Image) {
	g := e.sess.Game
	viewRows, _ := e.GetViewportSize()
	y := viewRows*e.tileSize + statusBarHeight

	msgs := g.Messages
	if len(msgs) > messagePaneRows {
		msgs = msgs[len(msgs)-messagePaneRows:]
	}
	for i, msg := range msgs {
		col := colorText
		if msg.Severity == state.SeverityWarning {
			col = colorWarning
		}
		e.drawUIText(screen, msg.Text, 8, y+i*messageLineGap, col)
	}
}
