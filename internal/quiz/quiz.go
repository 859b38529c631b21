// Package quiz scores the weekly quiz for learners aged 8 and up.
package quiz

import "context"

// FreeQuestionLimit is how many questions a learner without premium access sees.
const FreeQuestionLimit = 2

// Question is a multiple-choice question. Answer indexes Choices and is
// never sent to clients.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"-"`
}

// QuestionBank supplies the authored pool for a week.
type QuestionBank interface {
	Questions(ctx context.Context, age, week, year int) ([]Question, error)
}

// Result is the outcome of a submitted quiz.
type Result struct {
	Passed   bool `json:"passed"`
	Score    int  `json:"score"`
	Required int  `json:"required"`
	Total    int  `json:"total"`
}

// Cap trims the pool to the free limit unless the learner has premium access.
func Cap(questions []Question, premium bool) []Question {
	if premium || len(questions) <= FreeQuestionLimit {
		return questions
	}
	return questions[:FreeQuestionLimit]
}

// PassThreshold is the number of correct answers needed to pass n questions.
func PassThreshold(n int) int {
	return (n + 1) / 2
}

// Evaluate scores answers against questions. answers[i] is the chosen index
// for questions[i]; missing answers count as wrong. An empty quiz never passes.
func Evaluate(answers []int, questions []Question) Result {
	res := Result{
		Required: PassThreshold(len(questions)),
		Total:    len(questions),
	}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.Answer {
			res.Score++
		}
	}
	res.Passed = res.Total > 0 && res.Score >= res.Required
	return res
}
