// apps/go-cli/internal/game/score.go
//
// Guess validation and the two-pass scoring algorithm.
//
// Validation order is fixed: length → dictionary-or-alphabetic → scoring.
// A Scorer carries exactly one word policy, so the alphabetic and dictionary
// checks never run against the same guess.

package game

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Validation failures. Match with errors.Is.
var (
	ErrWordTooShort  = errors.New("word too short")
	ErrWordTooLong   = errors.New("word too long")
	ErrNonAlphabetic = errors.New("non-alphabetic character")
	ErrNotAValidWord = errors.New("not a valid word")
)

// GuessError reports which guess failed validation and why.
type GuessError struct {
	Guess string
	Err   error
}

func (e *GuessError) Error() string { return fmt.Sprintf("guess %q: %v", e.Guess, e.Err) }

func (e *GuessError) Unwrap() error { return e.Err }

// Policy selects the second validation stage.
type Policy int

const (
	// PolicyAlphabetic accepts any word made only of letters.
	PolicyAlphabetic Policy = iota
	// PolicyDictionary accepts only words present in the Dictionary.
	PolicyDictionary
)

// Dictionary is the read-only word list consulted by PolicyDictionary.
type Dictionary interface {
	Contains(word string) bool
}

// DefaultLength is the conventional word length.
const DefaultLength = 5

// Scorer validates and scores guesses of a fixed length.
// The zero value checks five-letter alphabetic words.
type Scorer struct {
	Length     int
	Policy     Policy
	Dictionary Dictionary
}

func (s Scorer) length() int {
	if s.Length <= 0 {
		return DefaultLength
	}
	return s.Length
}

// Validate checks guess without scoring it.
func (s Scorer) Validate(guess string) error {
	n := utf8.RuneCountInString(guess)
	switch {
	case n > s.length():
		return &GuessError{Guess: guess, Err: ErrWordTooLong}
	case n < s.length():
		return &GuessError{Guess: guess, Err: ErrWordTooShort}
	}

	if s.Policy == PolicyDictionary {
		if s.Dictionary == nil || !s.Dictionary.Contains(guess) {
			return &GuessError{Guess: guess, Err: ErrNotAValidWord}
		}
		return nil
	}
	for _, r := range guess {
		if !unicode.IsLetter(r) {
			return &GuessError{Guess: guess, Err: ErrNonAlphabetic}
		}
	}
	return nil
}

// Score validates guess and, if it is well formed, scores it against secret.
// The expected length is always the secret's; s.Length only applies to
// Validate. On error no ScoredGuess is returned.
func (s Scorer) Score(guess, secret string) (ScoredGuess, error) {
	s.Length = utf8.RuneCountInString(secret)
	if err := s.Validate(guess); err != nil {
		return nil, err
	}
	return Score([]rune(guess), []rune(secret)), nil
}

// Score implements the two-pass scoring algorithm over equal-length words.
// It does no validation; a length mismatch is a programming error.
//
// Pass 1:
//   - Mark exact matches as CorrectPosition.
//   - Count the secret letters that were not matched exactly.
//
// Pass 2 (left to right):
//   - For each unresolved guess letter: if an unconsumed occurrence remains,
//     mark PresentWrongPosition and consume it; otherwise mark Absent.
//
// Pass 1 must finish before pass 2 starts, otherwise an early duplicate could
// consume the occurrence a later exact match needs.
func Score(guess, secret []rune) ScoredGuess {
	if len(guess) != len(secret) {
		panic(fmt.Sprintf("game: score length mismatch: guess %d, secret %d", len(guess), len(secret)))
	}
	res := make(ScoredGuess, len(guess))
	available := make(map[rune]int, len(secret))

	for i, r := range guess {
		res[i].Char = r
		if r == secret[i] {
			res[i].State = CorrectPosition
		} else {
			available[secret[i]]++
		}
	}

	for i, r := range guess {
		if res[i].State == CorrectPosition {
			continue
		}
		if available[r] > 0 {
			res[i].State = PresentWrongPosition
			available[r]--
		} else {
			res[i].State = Absent
		}
	}
	return res
}
