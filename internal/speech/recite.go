package speech

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// MatchThreshold is the share of expected words a recitation must contain.
const MatchThreshold = 0.8

// ErrNoSpeech is returned when nothing was heard.
var ErrNoSpeech = errors.New("no speech detected")

// Transcript is speech already recognized on the client. It satisfies the
// listener used by the recitation flow.
type Transcript string

// ListenOnce returns the transcript, or ErrNoSpeech when it is blank.
func (t Transcript) ListenOnce(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(string(t)) == "" {
		return "", ErrNoSpeech
	}
	return string(t), nil
}

// Match scores heard against expected as the share of expected words that
// appear in heard in order. Case and punctuation are ignored.
func Match(heard, expected string) (bool, float64) {
	want := words(expected)
	got := words(heard)
	if len(want) == 0 {
		return false, 0
	}

	matched := lcs(got, want)
	score := float64(matched) / float64(len(want))
	return score >= MatchThreshold, score
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// lcs returns the length of the longest common subsequence of a and b.
func lcs(a, b []string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
