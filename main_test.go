package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	err := cmd.Execute()
	return out.String(), err
}

func wordFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPlayFromWordFile(t *testing.T) {
	path := wordFile(t, "guess\n")

	for _, args := range [][]string{
		{"--color", "off", path},
		{"play", "--color", "off", path},
	} {
		out, err := runCLI(t, "tool\nplead\nguess\n", args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Words cannot be shorter than 5 letters!")
		assert.Contains(t, out, "That is not a valid guess!")
		assert.Contains(t, out, "Solved in 1/6!")
	}
}

func TestPlayAnyWordAndShowWord(t *testing.T) {
	path := wordFile(t, "guess\n")

	out, err := runCLI(t, "w0rds\nsregs\n", "--color", "off", "--any-word", "--show-word", "--max-attempts", "1", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "The word is guess\n"))
	assert.Contains(t, out, "Words can only contain alphabetic characters!")
	assert.Contains(t, out, "Out of guesses. The word was guess.")
	assert.Contains(t, out, "Wordle X/1")
}

func TestPlayWordFileErrors(t *testing.T) {
	_, err := runCLI(t, "", "--color", "off", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "could not open the file you selected")

	_, err = runCLI(t, "", "--color", "off", wordFile(t, "tool\n"))
	assert.ErrorContains(t, err, "no 5-letter words were found in the file you selected")

	_, err = runCLI(t, "", "--color", "off", "--length", "6")
	assert.ErrorContains(t, err, "no 6-letter words were found in the built-in word lists")
	assert.NotContains(t, err.Error(), "file you selected")

	out, err := runCLI(t, "tool\n", "--color", "off", "--length", "4", wordFile(t, "tool\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in 1/6!")
}

func TestRejectsUnknownColorMode(t *testing.T) {
	_, err := runCLI(t, "", "--color", "rainbow", wordFile(t, "guess\n"))
	assert.ErrorContains(t, err, "unknown color mode")
}

func TestTooManyArgs(t *testing.T) {
	_, err := runCLI(t, "", "a.txt", "b.txt")
	assert.Error(t, err)
}
