package player

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"video-bingo/internal/card"
)

const labelWidth = 18

var stateMarks = map[card.SquareState]string{
	card.StateFree:       "*",
	card.StateSelected:   "x",
	card.StateUnselected: " ",
	card.StateHit:        "+",
	card.StateTarget:     "o",
	card.StateWrong:      "!",
	card.StateNeutral:    " ",
}

// Render writes the selected card as a 5x5 grid. Each square shows its grid
// number, its mark and the label for the game's display mode.
func Render(w io.Writer, s *Session) error {
	g, c, ok := s.Current()
	if !ok {
		_, err := fmt.Fprintln(w, "No game selected.")
		return err
	}
	squares := card.Grade(*c, g.Pattern)

	if _, err := fmt.Fprintf(w, "%s (%s)\n", g.Name, g.Playlist.Name); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for row := 0; row < 5; row++ {
		cells := make([]string, 0, 5)
		for col := 0; col < 5; col++ {
			i := row*5 + col
			label := c.Label(i, g.DisplayMode)
			if r := []rune(label); len(r) > labelWidth {
				label = string(r[:labelWidth-1]) + "…"
			}
			cells = append(cells, fmt.Sprintf("%2d[%s] %s", i+1, stateMarks[squares[i].State()], label))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !g.Pattern.Empty() {
		t := card.Count(squares)
		_, err := fmt.Fprintf(w, "Pattern %s: %d/%d hit, %d wrong\n", g.PatternName, t.Hits, t.Hits+t.Targets, t.Wrong)
		return err
	}
	return nil
}
