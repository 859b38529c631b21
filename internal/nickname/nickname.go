// Package nickname generates friendly display names for learners who do not
// pick one.
package nickname

import (
	"crypto/rand"
	"math/big"
	"strings"
)

var adjectives = []string{
	"happy", "sunny", "brave", "bright", "gentle", "joyful", "kind", "faithful",
	"hopeful", "cheerful", "loyal", "patient", "humble", "mighty", "merry", "noble",
	"peaceful", "thankful", "trusty", "wise", "caring", "daring", "eager", "lively",
	"quiet", "shining", "steady", "swift", "bold", "glad",
}

var nouns = []string{
	"lamb", "lion", "dove", "eagle", "sparrow", "shepherd", "fisher", "builder",
	"lantern", "star", "olive", "cedar", "river", "mountain", "harp", "trumpet",
	"seed", "vine", "fig", "rainbow", "ark", "donkey", "camel", "whale",
	"raven", "lily", "pearl", "sheep", "ox", "oak",
}

// Generate returns a random "Adjective Noun" nickname such as "Brave Lion".
func Generate() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return title(adjective) + " " + title(noun), nil
}

// OrDefault returns name trimmed, or a generated nickname when it is empty.
func OrDefault(name string) (string, error) {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed, nil
	}
	return Generate()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
