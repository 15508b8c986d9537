package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 10, 19, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-18", DateKey(d))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	sameDay := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)

	i := WordIndex(day, "salt", 100)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)
	assert.Equal(t, i, WordIndex(sameDay, "salt", 100))
	assert.Equal(t, 0, WordIndex(day, "salt", 0))

	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(day.AddDate(0, 0, d), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 1, "index should vary across days")
}

func TestAnswer(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	answers := []string{"crane", "guess", "pilot"}

	assert.Contains(t, answers, Answer(day, "salt", answers))
	assert.Equal(t, Answer(day, "salt", answers), Answer(day, "salt", answers))
	assert.Equal(t, "", Answer(day, "salt", nil))
}

func TestStartAndNext(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2026, 10, 18, 22, 30, 0, 0, loc) // 03:30 UTC on the 19th

	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), Start(late))
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), Next(late))
	assert.Equal(t, DateKey(late), DateKey(Start(late)))
	assert.NotEqual(t, DateKey(late), DateKey(Next(late)))
}

func TestWordIndexDependsOnSalt(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	differs := false
	for i := 0; i < 10 && !differs; i++ {
		d := day.AddDate(0, 0, i)
		differs = WordIndex(d, "a", 1<<20) != WordIndex(d, "b", 1<<20)
	}
	assert.True(t, differs)
}
