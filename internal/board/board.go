// Package board draws scored guesses as a grid of rounded letter tiles.
package board

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Colour modes accepted by New (same vocabulary as the --color flag).
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Board renders game grids for one output stream.
type Board struct {
	r      *lipgloss.Renderer
	tile   lipgloss.Style
	states map[game.LetterState]lipgloss.Style
}

// New returns a Board writing for w. mode is auto, on or off.
func New(w io.Writer, mode string) (*Board, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAuto, "":
	case ColorOn:
		r.SetColorProfile(termenv.ANSI256)
	case ColorOff:
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("board: unknown color mode %q (want auto|on|off)", mode)
	}

	tile := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	b := &Board{r: r, tile: tile, states: make(map[game.LetterState]lipgloss.Style, 3)}
	for _, s := range []game.LetterState{game.Absent, game.PresentWrongPosition, game.CorrectPosition} {
		b.states[s] = b.styleFor(s)
	}
	return b, nil
}

func (b *Board) styleFor(s game.LetterState) lipgloss.Style {
	switch s {
	case game.CorrectPosition:
		green := lipgloss.Color("2")
		return b.tile.BorderForeground(green).Foreground(green).Bold(true)
	case game.PresentWrongPosition:
		yellow := lipgloss.Color("3")
		return b.tile.BorderForeground(yellow).Foreground(yellow).Bold(true)
	case game.Absent:
		return b.tile.Faint(true)
	}
	return b.tile
}

// Row renders one scored guess.
func (b *Board) Row(g game.ScoredGuess) string {
	tiles := make([]string, len(g))
	for i, l := range g {
		tiles[i] = b.states[l.State].Render(string(unicode.ToUpper(l.Char)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// BlankRow renders length empty tiles.
func (b *Board) BlankRow(length int) string {
	tiles := make([]string, length)
	for i := range tiles {
		tiles[i] = b.tile.Render(" ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Grid renders every guess followed by blank rows up to rows.
func (b *Board) Grid(guesses []game.ScoredGuess, rows, length int) string {
	out := make([]string, 0, rows)
	for _, g := range guesses {
		out = append(out, b.Row(g))
	}
	for len(out) < rows {
		out = append(out, b.BlankRow(length))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// Summary renders the spoiler-free result block players paste elsewhere,
// e.g. "Wordle 3/6" followed by one line of squares per guess.
func Summary(guesses []game.ScoredGuess, won bool, maxAttempts int) string {
	var sb strings.Builder
	score := "X"
	if won {
		score = fmt.Sprint(len(guesses))
	}
	fmt.Fprintf(&sb, "Wordle %s/%d\n", score, maxAttempts)
	for _, g := range guesses {
		sb.WriteByte('\n')
		for _, l := range g {
			sb.WriteString(square(l.State))
		}
	}
	return sb.String()
}

func square(s game.LetterState) string {
	switch s {
	case game.CorrectPosition:
		return "🟩"
	case game.PresentWrongPosition:
		return "🟨"
	case game.Absent:
		return "⬛"
	}
	return "?"
}
