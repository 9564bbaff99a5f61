package gravity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gravity-lanes/internal/core"
)

// Visual characters for rendering
const (
	LaneChar      = '#'
	BonusChar     = '*'
	PlayerDown    = 'v'
	PlayerUp      = '^'
	FrameSideChar = '|'
	FrameEdgeChar = '-'
)

// winnerFrames is how many animation frames the win screen cycles through
// before it settles.
const winnerFrames = 10

var winnerColors = []core.Color{core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateRunning:
		g.drawPlayfield(dst)
	case StateWon:
		g.drawWinner(dst)
	case StateFellOff:
		g.drawEndScreen(dst, "Game Over", "You fell off the lanes")
	case StateTimedOut:
		g.drawEndScreen(dst, "Time's Up", "Game Over")
	case StateQuit:
		// Nothing: the platform is shutting down.
	}
}

func (g *Game) drawPlayfield(dst *core.Screen) {
	drawFrame(dst, g.cfg.Playfield.Width, g.cfg.Playfield.Height)

	for _, l := range g.level.Lanes {
		dst.DrawHLine(l.X, l.Y, l.Length, LaneChar, l.Color)
	}

	for _, b := range g.level.Bonuses {
		if !b.Collected {
			dst.SetColor(b.X, b.Y, BonusChar, core.ColorCyan)
		}
	}

	// The player is drawn on the side of its row it clings to.
	p := g.level.Player
	glyph := PlayerDown
	if p.Gravity < 0 {
		glyph = PlayerUp
	}
	dst.SetColor(p.X, p.Y+int(p.Gravity), glyph, p.Color)

	g.drawHUD(dst)
}

func (g *Game) drawHUD(dst *core.Screen) {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	secs := g.RemainingSeconds()
	color := core.ColorDefault
	if g.remaining <= g.cfg.Timing.WarnBelow && secs%2 == 0 {
		color = core.ColorRed
	}
	dst.DrawTextColor(w/2-len("Time left: 00 s.")/2, 0, fmt.Sprintf("Time left: %02d s", secs), color)

	dst.DrawText(2, h-1, fmt.Sprintf(" Bonuses: %d/%d ", g.level.Collected(), len(g.level.Bonuses)))
	levelText := fmt.Sprintf(" Level %d ", g.level.Number)
	dst.DrawText(w-2-len(levelText), h-1, levelText)
}

// RemainingSeconds returns the countdown rounded up to whole seconds.
func (g *Game) RemainingSeconds() int {
	return int(math.Ceil(g.remaining.Seconds()))
}

func (g *Game) drawWinner(dst *core.Screen) {
	const text = "Winner!"
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	frame := core.Min(g.endTicks, winnerFrames-1)
	direction := 1
	if frame%2 != 0 {
		direction = -1
	}
	col := core.Clamp((w-len(text))/2+direction*(frame%3), 0, w-len(text))
	dst.DrawTextColor(col, h/2, text, winnerColors[frame%len(winnerColors)])

	summary := fmt.Sprintf("All %d bonuses collected in %d s", len(g.level.Bonuses), int(g.elapsed.Seconds()))
	dst.DrawTextCentered(h/2+2, summary, core.ColorDefault)
	dst.DrawTextCentered(h-3, endHint, core.ColorGray)
}

const endHint = "R: play again  |  B: menu  |  Q: quit"

// drawEndScreen draws a message box in the center of the frame.
func (g *Game) drawEndScreen(dst *core.Screen, title, subtitle string) {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	drawFrame(dst, w, h)

	boxW := core.Max(len(title), len(subtitle)) + 6
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)
	dst.DrawBox(box, core.ColorRed)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)

	score := fmt.Sprintf("Bonuses: %d/%d", g.level.Collected(), len(g.level.Bonuses))
	dst.DrawTextCentered(box.Bottom()+1, score, core.ColorDefault)
	dst.DrawTextCentered(h-3, endHint, core.ColorGray)
}

// drawFrame draws the red playfield border.
func drawFrame(dst *core.Screen, w, h int) {
	dst.DrawVLine(0, 0, h, FrameSideChar, core.ColorRed)
	dst.DrawVLine(w-1, 0, h, FrameSideChar, core.ColorRed)
	dst.DrawHLine(0, 0, w, FrameEdgeChar, core.ColorRed)
	dst.DrawHLine(0, h-1, w, FrameEdgeChar, core.ColorRed)
}
