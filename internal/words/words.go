// apps/go-cli/internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply Random, Contains, IsAnswer and Stats.
//
// Word Lists:
//   - "answers": canonical solutions (exactly Length letters, lowercase).
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If both answersPath and allowedPath are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only allowedPath is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If only answersPath is set, it serves as both lists as well.
//   4. If neither is set,
//      fall back to the embedded defaults in the assets package.
//
// Constraints:
//   • Words must be alphabetic and exactly Length letters; others are skipped.
//   • Lists are normalized to lowercase; blank lines and `#` comments are ignored.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

// ErrNoWords is returned when no usable answers were found.
var ErrNoWords = errors.New("words: answers list is empty")

// List is an immutable answer list plus allowed-guess set for one word length.
// It satisfies game.Dictionary and is safe for concurrent reads.
type List struct {
	length     int
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
}

// Load builds a List of words with the given length. Empty paths select the
// rules described in the package comment.
func Load(answersPath, allowedPath string, length int) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "" || answersPath != "":
		path := allowedPath
		if path == "" {
			path = answersPath
		}
		if allowList, err = readWordFile(path); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = readEmbedded(assets.Answers); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed); err != nil {
			return nil, err
		}
	}

	l := New(ansList, allowList, length)
	if len(l.answers) == 0 {
		return nil, ErrNoWords
	}
	a, g := l.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Int("length", length).Msg("word lists loaded")
	return l, nil
}

// New builds a List from in-memory slices. Words are normalized and filtered
// the same way as file input; answers are always allowed.
func New(answers, allowed []string, length int) *List {
	l := &List{
		length:     length,
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		w, ok := normalize(w, length)
		if !ok {
			continue
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w, ok := normalize(w, length); ok {
			l.allowedSet[w] = struct{}{}
		}
	}
	return l
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	out, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func readEmbedded(open func() (io.ReadCloser, error)) ([]string, error) {
	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded words: %w", err)
	}
	defer rc.Close()
	return readWords(rc)
}

// readWords returns the non-blank, non-comment lines of r.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize lowercases w and reports whether it is a usable word.
func normalize(w string, length int) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if utf8.RuneCountInString(w) != length || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s consists only of letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Length is the word length this list was built for.
func (l *List) Length() int { return l.length }

// Answers returns the canonical answer list (all lowercase).
func (l *List) Answers() []string { return l.answers }

// Random returns a cryptographically random answer, or "" for an empty list.
func (l *List) Random() string {
	if len(l.answers) == 0 {
		return ""
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// Contains reports whether w is a valid guess (answers ∪ allowed).
// The lookup is exact; callers normalize case beforehand.
func (l *List) Contains(w string) bool {
	_, ok := l.allowedSet[w]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[w]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
