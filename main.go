package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/go-cli/internal/board"
	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Play wordle in your terminal!",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			c, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, c)
			setupLogging(c.LogLevel)
			if err := setupColor(c.Color); err != nil {
				return err
			}
			*cfg = *c
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("color", board.ColorAuto, "colorize output (auto|on|off)")
	pf.String("log-level", "", "log level (trace|debug|info|warn|error); overrides LOG_LEVEL")
	pf.String("answers", "", "answer list file; overrides WORDS_ANSWERS_FILE")
	pf.String("allowed", "", "allowed guess list file; overrides WORDS_ALLOWED_FILE")
	pf.Int("length", 0, "word length; overrides WORD_LENGTH")
	pf.Int("max-attempts", 0, "guesses per game; overrides MAX_ATTEMPTS")

	playCmd := newPlayCmd(cfg)
	root.AddCommand(playCmd, newServeCmd(cfg))

	// `wordle [WORDFILE]` is shorthand for `wordle play [WORDFILE]`.
	root.Args = playCmd.Args
	root.Flags().AddFlagSet(playCmd.Flags())
	root.RunE = playCmd.RunE
	return root
}

// applyFlags lets explicitly set persistent flags override the environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("color") {
		c.Color, _ = fs.GetString("color")
	}
	if fs.Changed("log-level") {
		c.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("answers") {
		c.AnswersFile, _ = fs.GetString("answers")
	}
	if fs.Changed("allowed") {
		c.AllowedFile, _ = fs.GetString("allowed")
	}
	if n, _ := fs.GetInt("length"); fs.Changed("length") && n > 0 {
		c.WordLength = n
	}
	if n, _ := fs.GetInt("max-attempts"); fs.Changed("max-attempts") && n > 0 {
		c.MaxAttempts = n
	}
}

// setupLogging routes zerolog to stderr so logs never land on the board.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isTerminal(os.Stderr)})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// setupColor configures fatih/color for status messages.
func setupColor(mode string) error {
	switch mode {
	case board.ColorAuto, "":
		color.NoColor = !isTerminal(os.Stdout)
	case board.ColorOn:
		color.NoColor = false
	case board.ColorOff:
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
	return nil
}

// loadWords loads the configured lists. Errors name the source: the file
// the player selected or the built-in lists.
func loadWords(c *config.Config) (*words.List, error) {
	source := "the file you selected"
	if c.AnswersFile == "" && c.AllowedFile == "" {
		source = "the built-in word lists"
	}

	wl, err := words.Load(c.AnswersFile, c.AllowedFile, c.WordLength)
	switch {
	case errors.Is(err, words.ErrNoWords):
		return nil, fmt.Errorf("no %d-letter words were found in %s: %w", c.WordLength, source, err)
	case err != nil:
		return nil, fmt.Errorf("could not open %s: %w", source, err)
	}
	log.Debug().Int("length", wl.Length()).Msg("words ready")
	return wl, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
