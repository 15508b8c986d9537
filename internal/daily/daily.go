// Package daily picks a deterministic answer per UTC calendar day.
//
// The index for a day is HMAC-SHA256(salt, "YYYY-MM-DD") read as a big-endian
// uint64 and reduced modulo the answer count, so the same salt and list give
// every player the same word until the next UTC midnight.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Start is UTC midnight of the day containing t.
func Start(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Next is the UTC midnight at which the answer for t's day rolls over.
func Next(t time.Time) time.Time {
	return Start(t).AddDate(0, 0, 1)
}

// seed derives the per-day value that WordIndex reduces.
func seed(key, salt string) uint64 {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(key))
	return binary.BigEndian.Uint64(mac.Sum(nil))
}

// WordIndex maps date to a position in a list of n answers; 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(seed(DateKey(date), salt) % uint64(n))
}

// Answer returns the answer for date from answers, or "" if answers is empty.
func Answer(date time.Time, salt string, answers []string) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[WordIndex(date, salt, len(answers))]
}
