package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/board"
	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
)

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var (
		showWord bool
		useDaily bool
		anyWord  bool
	)
	cmd := &cobra.Command{
		Use:   "play [WORDFILE]",
		Short: "Play one game in the terminal",
		Long: `Play one game in the terminal.

WORDFILE, when given, is a text file with one word per line used both for the
secret word and for validating guesses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.AnswersFile, cfg.AllowedFile = "", args[0]
			}
			wl, err := loadWords(cfg)
			if err != nil {
				return err
			}

			secret := wl.Random()
			if useDaily {
				secret = daily.Answer(time.Now(), cfg.DailySalt, wl.Answers())
			}

			scorer := game.Scorer{Policy: game.PolicyDictionary, Dictionary: wl}
			if anyWord {
				scorer = game.Scorer{Policy: game.PolicyAlphabetic}
			}
			g := game.New(secret, game.WithMaxAttempts(cfg.MaxAttempts), game.WithScorer(scorer))

			out := cmd.OutOrStdout()
			b, err := board.New(out, cfg.Color)
			if err != nil {
				return err
			}

			_, err = play.Run(cmd.Context(), play.Options{
				In:       cmd.InOrStdin(),
				Out:      out,
				Game:     g,
				Board:    b,
				ShowWord: showWord,
				Clear:    out == os.Stdout && isTerminal(os.Stdout),
			})
			if errors.Is(err, context.Canceled) {
				fmt.Fprintf(out, "The word was %s.\n", g.Secret())
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&showWord, "show-word", false, "show the word to guess")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "play today's word instead of a random one")
	cmd.Flags().BoolVar(&anyWord, "any-word", false, "accept any alphabetic guess instead of only listed words")
	return cmd
}
