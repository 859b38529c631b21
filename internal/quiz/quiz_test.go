package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: fmt.Sprintf("q%d", i), Prompt: "?", Choices: []string{"a", "b", "c"}, Answer: i % 3}
	}
	return qs
}

func TestPassThreshold(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 2, want: 1},
		{n: 3, want: 2},
		{n: 4, want: 2},
		{n: 5, want: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PassThreshold(tt.n), "n=%d", tt.n)
	}
}

func TestCap(t *testing.T) {
	pool := questions(5)
	assert.Len(t, Cap(pool, false), FreeQuestionLimit)
	assert.Equal(t, pool[:2], Cap(pool, false))
	assert.Len(t, Cap(pool, true), 5)
	assert.Len(t, Cap(questions(1), false), 1)
}

func TestEvaluate(t *testing.T) {
	qs := questions(4) // answers 0,1,2,0

	tests := []struct {
		name       string
		answers    []int
		wantScore  int
		wantPassed bool
	}{
		{name: "all correct", answers: []int{0, 1, 2, 0}, wantScore: 4, wantPassed: true},
		{name: "exactly half", answers: []int{0, 1, 0, 1}, wantScore: 2, wantPassed: true},
		{name: "one right", answers: []int{0, 0, 0, 1}, wantScore: 1, wantPassed: false},
		{name: "missing answers", answers: []int{0}, wantScore: 1, wantPassed: false},
		{name: "extra answers ignored", answers: []int{0, 1, 2, 0, 1, 1}, wantScore: 4, wantPassed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.answers, qs)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantPassed, res.Passed)
			assert.Equal(t, 2, res.Required)
			assert.Equal(t, 4, res.Total)
		})
	}
}

func TestEvaluateEmptyNeverPasses(t *testing.T) {
	res := Evaluate(nil, nil)
	assert.False(t, res.Passed)
	assert.Zero(t, res.Total)
}

func TestFromContent(t *testing.T) {
	qs := FromContent(10, 5, 1)
	require.NotEmpty(t, qs)

	for _, q := range qs {
		require.GreaterOrEqual(t, len(q.Choices), 2, q.ID)
		require.Less(t, q.Answer, len(q.Choices), q.ID)
		assert.NotEmpty(t, q.Choices[q.Answer])
	}
	assert.Equal(t, "Loving Others", qs[0].Choices[qs[0].Answer])
	assert.Equal(t, "1 Corinthians 13:4", qs[1].Choices[qs[1].Answer])

	assert.Equal(t, qs, FromContent(10, 5, 1), "generation is deterministic")

	answers := make([]int, len(qs))
	for i, q := range qs {
		answers[i] = q.Answer
	}
	assert.True(t, Evaluate(answers, qs).Passed)
}

func TestKeyWordAndBook(t *testing.T) {
	assert.Equal(t, "commends", keyWord("But God commends his own love."))
	assert.Equal(t, "", keyWord(""))
	assert.Equal(t, "1 John", bookOf("1 John 4:8"))
	assert.Equal(t, "Song of Solomon", bookOf("Song of Solomon 2:4"))
	assert.Equal(t, "Genesis", bookOf("Genesis"))
}
