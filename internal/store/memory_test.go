package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

func TestMemorySave(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := game.New("guess")
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Save(ctx, g))
	require.NoError(t, s.Save(ctx, g))
	assert.Equal(t, 1, s.Len())

	var seen *game.Game
	require.NoError(t, s.Update(ctx, g.ID, func(got *game.Game) error {
		seen = got
		return nil
	}))
	assert.Same(t, g, seen)
}

func TestMemoryUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := game.New("guess", game.WithMaxAttempts(100))
	require.NoError(t, s.Save(ctx, g))

	assert.ErrorIs(t, s.Update(ctx, "missing", func(*game.Game) error { return nil }), ErrNotFound)

	boom := errors.New("boom")
	assert.ErrorIs(t, s.Update(ctx, g.ID, func(*game.Game) error { return boom }), boom)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, g.ID, func(g *game.Game) error {
				_, _, err := g.ApplyGuess("crane")
				return err
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, g.Attempts())
}
