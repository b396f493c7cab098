package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	minCellWidth = 6 // Width of each cell including its left border
	cellHeight   = 2 // Height of each cell including its top border
	hudHeight    = 3 // Title, score, mode lines above the board
	footerHeight = 2 // Status line below the board
)

// layout holds the board geometry for the current size and largest tile.
type layout struct {
	size  int
	cellW int
}

func (g *Game) layout() layout {
	size := g.BoardSize()
	maxTile := 0
	if g.state != nil {
		maxTile = g.state.MaxTile()
	}
	// Leave at least one space either side of the widest value
	cellW := max(minCellWidth, len(strconv.Itoa(maxTile))+3)
	return layout{size: size, cellW: cellW}
}

func (l layout) boardW() int { return l.size*l.cellW + 1 }
func (l layout) boardH() int { return l.size*cellHeight + 1 }

func (l layout) minWidth() int  { return max(l.boardW(), 24) }
func (l layout) minHeight() int { return hudHeight + 1 + l.boardH() + footerHeight }

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	boardX := (g.screenW - l.boardW()) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, l.boardW())
	g.renderBoard(dst, l, boardX, boardY)

	if g.status != "" {
		x := boardX + (l.boardW()-len(g.status))/2
		dst.DrawTextColor(max(x, 0), boardY+l.boardH()+1, g.status, core.ColorGray)
	}

	g.renderOverlays(dst, core.NewRect(boardX, boardY, l.boardW(), l.boardH()))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	l := g.layout()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", l.minWidth(), l.minHeight()))
}

// renderHUD draws the title, score and mode.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.state.Score())
	if g.lastGain > 0 {
		scoreStr += fmt.Sprintf(" (+%d)", g.lastGain)
	}
	dst.DrawText(boardX, 1, scoreStr)

	infoStr := fmt.Sprintf("Max: %d", g.state.MaxTile())
	dst.DrawText(max(boardX+boardW-len(infoStr), boardX), 1, infoStr)

	modeStr := fmt.Sprintf("%s  %dx%d", g.difficulty, g.state.Size(), g.state.Size())
	dst.DrawTextColor(boardX+(boardW-len(modeStr))/2, 2, modeStr, core.ColorGray)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, l layout, boardX, boardY int) {
	n := l.size

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*l.cellW
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				dst.DrawHLine(px+1, py, l.cellW-1, '─')
			}
			if y < n {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	grid := g.state.Grid()
	for r := range n {
		for c := range n {
			val := grid[r][c]
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((l.cellW-1-len(valStr))/2, 0)
			cellX := boardX + c*l.cellW + 1
			cellY := boardY + r*cellHeight + 1
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorBrightGreen
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorBrightCyan
	case 2048:
		return core.ColorBrightMagenta
	}
	if value > WinValue {
		return core.ColorMagenta
	}
	return core.ColorGray
}

// renderOverlays draws the end-of-game boxes.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()
	score := fmt.Sprintf("Score: %d", g.state.Score())

	switch {
	case g.won:
		g.drawOverlay(dst, cx, cy, "YOU WIN!", score, "Press R to restart")
	case g.gameOver():
		g.drawOverlay(dst, cx, cy, "YOU LOSE!", score, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
