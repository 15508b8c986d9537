// apps/go-cli/internal/play/play.go
//
// Interactive terminal loop for a single game.
// Responsibilities:
//   - Draw the board, prompt with "> " and read one guess per line.
//   - Turn validation errors into short messages and re-prompt.
//   - Announce the result and print a shareable summary when the game ends.
//
// The loop owns no game rules; it only drives a *game.Game.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/board"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var (
	errorColor = color.New(color.FgRed)
	winColor   = color.New(color.FgGreen, color.Bold)
	loseColor  = color.New(color.FgYellow, color.Bold)
)

// Options wires one interactive session.
type Options struct {
	In    io.Reader
	Out   io.Writer
	Game  *game.Game
	Board *board.Board

	// ShowWord prints the secret above the board on every redraw.
	ShowWord bool
	// Clear redraws from the top of the screen each turn. Only set it when
	// Out is a terminal.
	Clear bool
}

// Run plays until the game ends, input is exhausted or ctx is cancelled.
// It returns the final game state; an EOF before the end is not an error.
func Run(ctx context.Context, opts Options) (game.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, out := opts.Game, opts.Out
	lines, readErr := readLines(ctx, opts.In)

	var msg string
	for !g.Finished {
		draw(opts, msg)
		msg = ""
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return g.State(), ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				if err := <-readErr; err != nil {
					return g.State(), fmt.Errorf("read guess: %w", err)
				}
				fmt.Fprintf(out, "The word was %s.\n", g.Secret())
				return g.State(), nil
			}
			line = l
		}

		scored, state, err := g.ApplyGuess(line)
		if err != nil {
			log.Debug().Err(err).Str("game", g.ID).Msg("guess rejected")
			msg = Message(err, g.Length())
			continue
		}
		log.Debug().Str("game", g.ID).Str("guess", scored.Word()).Str("state", string(state)).
			Int("attempt", g.Attempts()).Msg("guess scored")
	}

	draw(opts, "")
	if g.Won {
		winColor.Fprintf(out, "Solved in %d/%d!\n", g.Attempts(), g.MaxAttempts)
	} else {
		loseColor.Fprintf(out, "Out of guesses. The word was %s.\n", g.Secret())
	}
	fmt.Fprintf(out, "\n%s\n", board.Summary(g.Guesses, g.Won, g.MaxAttempts))
	return g.State(), nil
}

func draw(opts Options, msg string) {
	if opts.Clear {
		termenv.NewOutput(opts.Out).ClearScreen()
	}
	g := opts.Game
	if opts.ShowWord {
		fmt.Fprintf(opts.Out, "The word is %s\n", g.Secret())
	}
	fmt.Fprintln(opts.Out, opts.Board.Grid(g.Guesses, g.MaxAttempts, g.Length()))
	if msg != "" {
		errorColor.Fprintln(opts.Out, msg)
	}
}

// Message is the player-facing text for a rejected guess.
func Message(err error, length int) string {
	switch {
	case errors.Is(err, game.ErrWordTooLong):
		return fmt.Sprintf("Words cannot be longer than %d letters!", length)
	case errors.Is(err, game.ErrWordTooShort):
		return fmt.Sprintf("Words cannot be shorter than %d letters!", length)
	case errors.Is(err, game.ErrNonAlphabetic):
		return "Words can only contain alphabetic characters!"
	case errors.Is(err, game.ErrNotAValidWord):
		return "That is not a valid guess!"
	case errors.Is(err, game.ErrGameFinished):
		return "The game is already over."
	}
	return err.Error()
}

// readLines feeds r line by line into a channel so the loop can also watch
// ctx. The error channel yields the scanner error once lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
