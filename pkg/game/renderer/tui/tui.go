// Package tui renders the game into the terminal with ANSI colors.
package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gloomdeep/pkg/engine/terminal"
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/renderer"
	"gloomdeep/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 9
	ViewportMinCols = 21
	// Lines needed outside the viewport: header, status, messages pane,
	// prompt
	ViewportTopMargin = 16
)

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check,
// since translation keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorPlayer  color.Style
	colorWall    color.Style
	colorFloor   color.Style
	colorDoor    color.Style
	colorStairs  color.Style
	colorItem    color.Style
	colorGold    color.Style
	colorMonster color.Style
	colorAlly    color.Style
	colorTrap    color.Style
	colorWarning color.Style
	colorSubtle  color.Style
	colorAction  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgGray, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorStairs = color.Style{color.FgWhite, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorGold = color.Style{color.FgYellow}
	t.colorMonster = color.Style{color.FgRed, color.OpBold}
	t.colorAlly = color.Style{color.FgCyan}
	t.colorTrap = color.Style{color.FgRed}
	t.colorWarning = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen. Plain ANSI rather than spawning clear(1)
// because the autopilot repaints many times a second.
func (t *TUIRenderer) Clear() {
	fmt.Print("\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleStairs:
		return t.colorStairs.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleGold:
		return t.colorGold.Sprint(text)
	case renderer.StyleMonster:
		return t.colorMonster.Sprint(text)
	case renderer.StyleAlly:
		return t.colorAlly.Sprint(text)
	case renderer.StyleTrap:
		return t.colorTrap.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ACTION":
			val = t.colorAction.Sprint(operand[0:1]) + t.colorSubtle.Sprint(operand[1:])
		case "WARN":
			val = t.colorWarning.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - 2
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep odd for centering on the player
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game, ctrl *autopilot.Controller) {
	t.Clear()
	t.printHeader(g, ctrl)
	t.printMap(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)
	fmt.Printf("\n> ")
}

// printHeader renders the depth/turn line and the autopilot mode
func (t *TUIRenderer) printHeader(g *state.Game, ctrl *autopilot.Controller) {
	t.colorAction.Printf("Depth %d", g.Depth)
	t.colorSubtle.Printf("  turn %d", g.Turn)
	if ctrl != nil && ctrl.Active() {
		t.colorStairs.Printf("  [%s, %d steps left]", ctrl.Mode(), len(ctrl.Remaining()))
	}
	fmt.Println()
	fmt.Println()
}

// printMap renders the viewport centered on the player
func (t *TUIRenderer) printMap(g *state.Game) {
	viewportRows, viewportCols := t.GetViewportSize()

	startRow := g.Player.Row - viewportRows/2
	startCol := g.Player.Col - viewportCols/2

	for vRow := 0; vRow < viewportRows; vRow++ {
		fmt.Print(" ")
		for vCol := 0; vCol < viewportCols; vCol++ {
			glyph, style := renderer.Glyph(g, startRow+vRow, startCol+vCol)
			fmt.Print(t.StyleText(glyph, style))
		}
		fmt.Print("\n")
	}
	fmt.Println()
}

// printStatusBar renders hit points, purse, hunger and active effects
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	p := g.Player

	hpStyle := &t.colorStairs
	if p.HP <= p.MaxHP/4 {
		hpStyle = &t.colorWarning
	}
	fmt.Print(t.colorSubtle.Sprint("HP: "))
	fmt.Print(hpStyle.Sprintf("%d/%d", p.HP, p.MaxHP))
	fmt.Print(t.colorSubtle.Sprint("  Gold: "))
	fmt.Print(t.colorGold.Sprintf("%d", p.Gold))

	if g.Opts.HungerEnabled {
		switch {
		case p.Hunger >= entities.HungerStarving:
			fmt.Print("  " + t.colorWarning.Sprint(gotext.Get("Starving")))
		case p.Hunger >= entities.HungerHungry:
			fmt.Print("  " + t.colorDoor.Sprint(gotext.Get("Hungry")))
		}
	}

	var effects []string
	if p.Poison > 0 {
		effects = append(effects, t.colorTrap.Sprint(gotext.Get("Poisoned")))
	}
	if p.Web > 0 {
		effects = append(effects, t.colorTrap.Sprint(gotext.Get("Webbed")))
	}
	if p.Confusion > 0 {
		effects = append(effects, t.colorTrap.Sprint(gotext.Get("Confused")))
	}
	if len(effects) > 0 {
		fmt.Print("  " + strings.Join(effects, " "))
	}
	fmt.Println()

	// Inventory summary
	fmt.Print(t.colorSubtle.Sprint("Inventory: "))
	if p.Inventory.Size() == 0 {
		fmt.Println(t.colorSubtle.Sprint("(empty)"))
	} else {
		items := []string{}
		p.Inventory.Each(func(item *entities.Item) {
			items = append(items, t.colorItem.Sprint(item.Name))
		})
		fmt.Println(strings.Join(items, t.colorSubtle.Sprint(", ")))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			if msg.Severity == state.SeverityWarning {
				fmt.Printf("  %s\n", t.colorWarning.Sprint(msg.Text))
			} else {
				fmt.Printf("  %s\n", msg.Text)
			}
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
