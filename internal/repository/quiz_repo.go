package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"versekids/internal/database"
	"versekids/internal/quiz"
)

// QuizRepository stores authored quiz questions
type QuizRepository struct {
	db database.DBTX
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db database.DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// QuestionRecord is an authored question with its targeting
type QuestionRecord struct {
	ProgramYear int
	Week        int
	MinAge      int
	MaxAge      int
	Position    int
	Question    quiz.Question
}

// Add stores a question, assigning an ID when none is set
func (r *QuizRepository) Add(ctx context.Context, rec *QuestionRecord) error {
	if rec.Question.ID == "" {
		rec.Question.ID = uuid.NewString()
	}
	if rec.Question.Answer < 0 || rec.Question.Answer >= len(rec.Question.Choices) {
		return fmt.Errorf("answer index %d out of range for %d choices", rec.Question.Answer, len(rec.Question.Choices))
	}
	choices, err := json.Marshal(rec.Question.Choices)
	if err != nil {
		return fmt.Errorf("failed to encode choices: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quiz_questions (id, program_year, week, min_age, max_age, position, prompt, choices, answer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Question.ID, rec.ProgramYear, rec.Week, rec.MinAge, rec.MaxAge, rec.Position,
		rec.Question.Prompt, string(choices), rec.Question.Answer)
	if err != nil {
		return fmt.Errorf("failed to add question: %w", err)
	}
	return nil
}

// Questions returns the authored pool for a learner's age and week in order
func (r *QuizRepository) Questions(ctx context.Context, age, week, year int) ([]quiz.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, prompt, choices, answer
		FROM quiz_questions
		WHERE program_year = ? AND week = ? AND min_age <= ? AND max_age >= ?
		ORDER BY position ASC, id ASC`,
		year, week, age, age)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var q quiz.Question
		var choices string
		if err := rows.Scan(&q.ID, &q.Prompt, &choices, &q.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(choices), &q.Choices); err != nil {
			return nil, fmt.Errorf("failed to decode choices for %s: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// All returns every authored question with its targeting
func (r *QuizRepository) All(ctx context.Context) ([]QuestionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, program_year, week, min_age, max_age, position, prompt, choices, answer
		FROM quiz_questions
		ORDER BY program_year, week, position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var records []QuestionRecord
	for rows.Next() {
		var rec QuestionRecord
		var choices string
		err := rows.Scan(&rec.Question.ID, &rec.ProgramYear, &rec.Week, &rec.MinAge, &rec.MaxAge,
			&rec.Position, &rec.Question.Prompt, &choices, &rec.Question.Answer)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(choices), &rec.Question.Choices); err != nil {
			return nil, fmt.Errorf("failed to decode choices for %s: %w", rec.Question.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
