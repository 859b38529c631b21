package quiz

import (
	"fmt"
	"strings"
	"unicode"

	"versekids/internal/content"
)

// FromContent derives a deterministic quiz from the week's library content.
// It is used when the question bank has nothing for the week. Distractors
// come from the two following weeks.
func FromContent(age, week, year int) []Question {
	verse := content.VerseFor(week, age, year, 1)
	others := []content.Verse{
		content.VerseFor(week+1, age, year, 1),
		content.VerseFor(week+2, age, year, 1),
	}

	var questions []Question
	add := func(id, prompt, answer string, distractors []string) {
		choices := []string{answer}
		for _, d := range distractors {
			if d != "" && !containsFold(choices, d) {
				choices = append(choices, d)
			}
		}
		if answer == "" || len(choices) < 2 {
			return
		}
		// rotate so the answer position varies by week but stays fixed
		pos := (week + len(questions)) % len(choices)
		choices[0], choices[pos] = choices[pos], choices[0]
		questions = append(questions, Question{
			ID:      fmt.Sprintf("y%d-w%d-%s", year, week, id),
			Prompt:  prompt,
			Choices: choices,
			Answer:  pos,
		})
	}

	add("theme", "What is this week's theme?", verse.Theme, []string{others[0].Theme, others[1].Theme})
	add("reference", "Where is this week's verse found?", verse.Reference, []string{others[0].Reference, others[1].Reference})

	if word := keyWord(verse.Text); word != "" {
		blanked := strings.Replace(verse.Text, word, "____", 1)
		add("word", fmt.Sprintf("Which word completes the verse? \"%s\"", blanked), word,
			[]string{keyWord(others[0].Text), keyWord(others[1].Text)})
	}
	add("book", "Which book of the Bible is this week's verse from?", bookOf(verse.Reference),
		[]string{bookOf(others[0].Reference), bookOf(others[1].Reference)})

	return questions
}

// keyWord returns the longest word in text, ignoring punctuation.
func keyWord(text string) string {
	var best string
	for _, field := range strings.Fields(text) {
		w := strings.TrimFunc(field, func(r rune) bool { return !unicode.IsLetter(r) })
		if len([]rune(w)) > len([]rune(best)) {
			best = w
		}
	}
	return best
}

// bookOf strips the chapter and verse from a reference like "1 John 4:8".
func bookOf(reference string) string {
	i := strings.LastIndex(reference, " ")
	if i < 0 {
		return reference
	}
	return reference[:i]
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
