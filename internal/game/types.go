// apps/go-cli/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterState: per-letter result of a guess (correct/present/absent).
//   - ScoredLetter / ScoredGuess: the immutable feedback for one guess.
//   - State: coarse session state (playing/won/lost).

package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LetterState represents the evaluation result for a single letter in a guess.
// Renderers must switch over all three values.
type LetterState int

const (
	// Absent: the letter is not in the secret, or every occurrence was
	// already consumed by other positions of the same guess.
	Absent LetterState = iota
	// PresentWrongPosition: an unconsumed occurrence exists elsewhere.
	PresentWrongPosition
	// CorrectPosition: the letter matches the secret at the same index.
	CorrectPosition
)

func (s LetterState) String() string {
	switch s {
	case Absent:
		return "absent"
	case PresentWrongPosition:
		return "present"
	case CorrectPosition:
		return "correct"
	}
	return fmt.Sprintf("LetterState(%d)", int(s))
}

// MarshalJSON encodes the state by name ("absent", "present", "correct").
func (s LetterState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ScoredLetter pairs a submitted character with its evaluation.
type ScoredLetter struct {
	Char  rune        `json:"char"`
	State LetterState `json:"state"`
}

// MarshalJSON writes Char as a one-character string instead of a code point.
func (l ScoredLetter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Char  string      `json:"char"`
		State LetterState `json:"state"`
	}{string(l.Char), l.State})
}

// ScoredGuess is the ordered feedback for one guess. Its length always equals
// the length of the secret word it was scored against.
type ScoredGuess []ScoredLetter

// Word reassembles the guessed word.
func (g ScoredGuess) Word() string {
	var b strings.Builder
	for _, l := range g {
		b.WriteRune(l.Char)
	}
	return b.String()
}

// States returns only the per-position states.
func (g ScoredGuess) States() []LetterState {
	out := make([]LetterState, len(g))
	for i, l := range g {
		out[i] = l.State
	}
	return out
}

// Solved reports whether every letter is in the correct position.
func (g ScoredGuess) Solved() bool {
	if len(g) == 0 {
		return false
	}
	for _, l := range g {
		if l.State != CorrectPosition {
			return false
		}
	}
	return true
}

// State is the coarse lifecycle of a game session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)
