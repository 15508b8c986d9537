// apps/go-cli/internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with a fixed secret and attempt budget (default 6).
//   - Normalize, validate and score guesses through a Scorer.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Answers/allowed lists are provided by the words package through the
//     Dictionary interface; this package never loads word lists itself.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxAttempts is the attempt budget when none is configured.
const DefaultMaxAttempts = 6

// ErrGameFinished is returned when a guess is applied to a won or lost game.
var ErrGameFinished = errors.New("game finished")

// Game holds the state of a single Wordle game session.
type Game struct {
	ID          string        // Unique game identifier (random hex string).
	MaxAttempts int           // Maximum number of guesses allowed.
	Guesses     []ScoredGuess // Accepted guesses so far, in order.
	Finished    bool          // True once the game is over (won or lost).
	Won         bool          // True if the game was finished with a win.

	secret string
	scorer Scorer
}

// Option configures a Game.
type Option func(*Game)

// WithMaxAttempts overrides the attempt budget. Non-positive values are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.MaxAttempts = n
		}
	}
}

// WithScorer sets the validation policy. The scorer's length is always
// forced to the secret's length.
func WithScorer(s Scorer) Option {
	return func(g *Game) { g.scorer = s }
}

// New constructs a new game for secret (lowercased).
func New(secret string, opts ...Option) *Game {
	g := &Game{
		ID:          randomID(),
		MaxAttempts: DefaultMaxAttempts,
		Guesses:     []ScoredGuess{},
		secret:      strings.ToLower(secret),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.scorer.Length = utf8.RuneCountInString(g.secret)
	return g
}

// Secret returns the answer. Callers decide when it may be revealed.
func (g *Game) Secret() string { return g.secret }

// Length is the number of letters in the secret.
func (g *Game) Length() int { return g.scorer.Length }

// Attempts is the number of accepted guesses so far.
func (g *Game) Attempts() int { return len(g.Guesses) }

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the scored guess, the new state, or an error.
//
// The guess is trimmed and lowercased before validation. Invalid guesses do
// not consume an attempt.
//
// State transitions:
//   - If all letters are CorrectPosition → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.MaxAttempts → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (ScoredGuess, State, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))

	scored, err := g.scorer.Score(guess, g.secret)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, scored)

	if scored.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.MaxAttempts {
		g.Finished = true
	}
	return scored, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
