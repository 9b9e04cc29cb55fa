// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"image/color"

	"gloomdeep/pkg/game/renderer"
)

// Color palette - brighter colors for visibility
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorWallBg          = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloorBg         = color.RGBA{35, 35, 55, 255}    // Background for explored floor
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white

	colorPlayer  = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall    = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorFloor   = color.RGBA{100, 100, 120, 255} // Medium gray
	colorDoor    = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorStairs  = color.RGBA{255, 255, 255, 255} // White
	colorItem    = color.RGBA{220, 170, 255, 255} // Bright purple
	colorGold    = color.RGBA{255, 200, 100, 255} // Orange-gold
	colorMonster = color.RGBA{255, 80, 80, 255}   // Bright red
	colorAlly    = color.RGBA{100, 200, 255, 255} // Bright cyan
	colorTrap    = color.RGBA{255, 100, 100, 255} // Red
	colorWarning = color.RGBA{255, 120, 120, 255} // Red for warnings
	colorSubtle  = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction  = color.RGBA{180, 150, 250, 255} // Blue-purple
)

// styleColor maps a shared text style to the palette
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StylePlayer:
		return colorPlayer
	case renderer.StyleWall:
		return colorWall
	case renderer.StyleFloor:
		return colorFloor
	case renderer.StyleDoor:
		return colorDoor
	case renderer.StyleStairs:
		return colorStairs
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleGold:
		return colorGold
	case renderer.StyleMonster:
		return colorMonster
	case renderer.StyleAlly:
		return colorAlly
	case renderer.StyleTrap:
		return colorTrap
	case renderer.StyleWarning:
		return colorWarning
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleAction:
		return colorAction
	default:
		return colorText
	}
}

// Window and tile geometry
const (
	windowWidth  = 1024
	windowHeight = 768

	defaultTileSize = 24
	minTileSize     = 12
	maxTileSize     = 48
	tileSizeStep    = 4

	baseFontSize = 16.0 // Base font size at default tile size

	// Panel heights in pixels
	statusBarHeight = 28
	messagePaneRows = 6
	messageLineGap  = 18
)
