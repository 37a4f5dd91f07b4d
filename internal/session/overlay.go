package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// drawOverlay draws the start, pause and game over banners over the game.
func (s *Session) drawOverlay(dst *core.Screen) {
	switch s.lifecycle {
	case core.NotStarted:
		drawMessage(dst, core.ColorBrightCyan, s.game.Title(),
			"Press SPACE or an arrow to start",
			fmt.Sprintf("High score: %d", s.highScore))
	case core.Paused:
		drawMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case core.Over:
		st := s.game.State()
		title, color := "GAME OVER", core.ColorBrightRed
		if st.Outcome == core.OutcomeWin {
			title, color = "YOU WIN!", core.ColorBrightGreen
		}
		lines := []string{fmt.Sprintf("Score: %d", st.Score)}
		if st.Score > s.startHigh {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R restart  Esc menu")
		drawMessage(dst, color, title, lines...)
	}
}

// drawMessage draws a framed box in the middle of the screen with a
// colored title followed by the given lines.
func drawMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+4)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)
	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-utf8.RuneCountInString(text))/2
		dst.DrawTextColored(x, y, text, c)
	}
	center(box.Y+1, title, color)
	for i, l := range lines {
		center(box.Y+3+i, l, core.ColorDefault)
	}
}
