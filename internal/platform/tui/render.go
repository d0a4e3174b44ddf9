package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
}

// Layout constants
const (
	cellWidth = 2 // Screen columns per board tile
	hudRows   = 2 // HUD line plus a gap above the board
)

// playerColors gives each participant a fixed color.
var playerColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorBlue,
	core.Player2: core.ColorMagenta,
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RequiredSize returns the screen size needed to draw a board of the given
// dimensions with the HUD and the message lines below it.
func RequiredSize(boardW, boardH int) (w, h int) {
	return boardW * cellWidth, hudRows + boardH + 3
}

// DrawArena draws the HUD, the board and the message lines of a snapshot.
func DrawArena(s *core.Screen, snap arena.Snapshot, lines []string) {
	s.Clear()

	needW, needH := RequiredSize(snap.Width, snap.Height)
	if s.Width() < needW || s.Height() < needH {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), core.ColorRed)
		return
	}

	originX := (s.Width() - needW) / 2
	originY := hudRows

	drawHUD(s, snap)
	drawBoard(s, snap, originX, originY)

	if snap.State != arena.StatePlaying && len(lines) > 0 {
		drawOverlay(s, lines, originY+snap.Height/2)
		return
	}

	y := originY + snap.Height + 1
	for _, line := range lines {
		if y >= s.Height() {
			break
		}
		s.DrawTextCentered(y, line, core.ColorWhite)
		y++
	}
}

// drawOverlay draws lines in a box centred on row midY.
func drawOverlay(s *core.Screen, lines []string, midY int) {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	box := core.NewRect((s.Width()-w-4)/2, midY-(len(lines)+2)/2, w+4, len(lines)+2)
	s.DrawBox(box)
	for i, line := range lines {
		s.DrawTextCentered(box.Y+1+i, line, core.ColorWhite)
	}
}

func drawHUD(s *core.Screen, snap arena.Snapshot) {
	p1 := snap.Player(core.Player1)
	p2 := snap.Player(core.Player2)

	s.DrawTextColored(0, 0, playerStatus(p1), playerColors[core.Player1])

	right := playerStatus(p2)
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, playerColors[core.Player2])

	centre := fmt.Sprintf("%d - %d", snap.Score1, snap.Score2)
	if snap.State != arena.StateMenu {
		centre = fmt.Sprintf("R%d  %s  ⏱%3d", snap.Round, centre, snap.TimeRemaining)
	}
	s.DrawTextCentered(0, centre, core.ColorYellow)
}

// playerStatus formats the HUD summary of one participant.
func playerStatus(p arena.PlayerView) string {
	status := fmt.Sprintf("%s ♥%d B%d/%d F%d S%.1f", p.Name, p.Lives, p.MaxBombs-p.BombsPlaced, p.MaxBombs, p.BlastRadius, p.Speed)
	if p.Remote {
		status += " R"
	}
	return status
}

func drawBoard(s *core.Screen, snap arena.Snapshot, ox, oy int) {
	put := func(x, y int, glyph string, c core.Color) {
		s.DrawTextColored(ox+x*cellWidth, oy+y, glyph, c)
	}

	for y, row := range snap.Tiles {
		for x, t := range row {
			switch t {
			case arena.TileIndestructible:
				put(x, y, "██", core.ColorGray)
			case arena.TileBreakable:
				put(x, y, "▓▓", core.ColorBrown)
			default:
				put(x, y, "  ", core.ColorDefault)
			}
		}
	}

	for _, pu := range snap.PowerUps {
		put(pu.X, pu.Y, string(pu.Kind.Glyph())+" ", core.ColorGreen)
	}

	for _, b := range snap.Bombs {
		c := core.ColorRed
		if b.Fuse < 0.3 {
			c = core.ColorOrange
		}
		put(b.X, b.Y, "()", c)
	}

	for _, e := range snap.Explosions {
		c := core.ColorYellow
		if e.Progress > 0.6 {
			c = core.ColorOrange
		}
		put(e.X, e.Y, explosionGlyph(e.Shape), c)
	}

	for _, p := range snap.Players {
		if !p.Alive {
			continue
		}
		c := playerColors[p.ID]
		if p.Invulnerable {
			c = core.ColorWhite
		}
		col := int(math.Floor(p.Pos.X*cellWidth + 0.5))
		s.DrawTextColored(ox+col, oy+core.TileOf(p.Pos.Y), playerGlyph(p), c)
	}
}

// explosionGlyph returns the two-column glyph of an explosion cell.
func explosionGlyph(shape arena.Shape) string {
	switch shape {
	case arena.ShapeCenter:
		return "**"
	case arena.ShapeHorizontal:
		return "=="
	case arena.ShapeVertical:
		return "||"
	case arena.ShapeEndUp:
		return "^^"
	case arena.ShapeEndDown:
		return "vv"
	case arena.ShapeEndLeft:
		return "<="
	case arena.ShapeEndRight:
		return "=>"
	default:
		return "##"
	}
}

func playerGlyph(p arena.PlayerView) string {
	if p.ID == core.Player2 {
		return "P2"
	}
	return "P1"
}
