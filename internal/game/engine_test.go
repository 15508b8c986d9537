package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameDefaults(t *testing.T) {
	g := New("GUESS")

	assert.Len(t, g.ID, 16)
	assert.Equal(t, "guess", g.Secret())
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts)
	assert.Equal(t, 5, g.Length())
	assert.Equal(t, StatePlaying, g.State())
	assert.NotEqual(t, g.ID, New("guess").ID)
}

func TestApplyGuessWin(t *testing.T) {
	g := New("guess")

	scored, state, err := g.ApplyGuess("sregs")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, []LetterState{P, A, C, P, C}, scored.States())

	scored, state, err = g.ApplyGuess("  GUESS \n")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.True(t, scored.Solved())
	assert.True(t, g.Finished)
	assert.True(t, g.Won)
	assert.Equal(t, 2, g.Attempts())

	_, state, err = g.ApplyGuess("guess")
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, 2, g.Attempts())
}

func TestApplyGuessLoss(t *testing.T) {
	g := New("guess", WithMaxAttempts(3))

	for i := 0; i < 2; i++ {
		_, state, err := g.ApplyGuess("crane")
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, state)
	}
	_, state, err := g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuessInvalidDoesNotConsumeAttempt(t *testing.T) {
	g := New("guess", WithScorer(Scorer{Policy: PolicyDictionary, Dictionary: newWordSet("crane")}))

	tests := []struct {
		guess   string
		wantErr error
	}{
		{"spread", ErrWordTooLong},
		{"tool", ErrWordTooShort},
		{"plead", ErrNotAValidWord},
	}
	for _, tt := range tests {
		scored, state, err := g.ApplyGuess(tt.guess)
		assert.ErrorIs(t, err, tt.wantErr)
		assert.Nil(t, scored)
		assert.Equal(t, StatePlaying, state)
	}
	assert.Equal(t, 0, g.Attempts())

	_, _, err := g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Attempts())
}

func TestWithScorerLengthFollowsSecret(t *testing.T) {
	g := New("banana", WithScorer(Scorer{Length: 5}))
	assert.Equal(t, 6, g.Length())

	_, _, err := g.ApplyGuess("bananas")
	assert.ErrorIs(t, err, ErrWordTooLong)

	scored, _, err := g.ApplyGuess("ananas")
	require.NoError(t, err)
	assert.Len(t, scored, 6)
}

func TestWithMaxAttemptsIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultMaxAttempts, New("guess", WithMaxAttempts(0)).MaxAttempts)
	assert.Equal(t, DefaultMaxAttempts, New("guess", WithMaxAttempts(-2)).MaxAttempts)
}

func TestScoredGuessJSON(t *testing.T) {
	b, err := json.Marshal(Score([]rune("sregs"), []rune("guess"))[:2])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"char":"s","state":"present"},{"char":"r","state":"absent"}]`, string(b))
}

func TestApplyGuessNormalizesBeforeDictionary(t *testing.T) {
	dict := newWordSet("crane")
	g := New("guess", WithScorer(Scorer{Policy: PolicyDictionary, Dictionary: dict}))

	scored, _, err := g.ApplyGuess(" CRANE\t")
	require.NoError(t, err)
	assert.Equal(t, "crane", scored.Word())

	_, err = Scorer{Policy: PolicyDictionary, Dictionary: dict}.Score("CRANE", "guess")
	assert.ErrorIs(t, err, ErrNotAValidWord)
}
