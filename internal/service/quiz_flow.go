package service

import (
	"context"

	"versekids/internal/models"
	"versekids/internal/quiz"
)

// QuizView is the quiz shown to a learner
type QuizView struct {
	Week      int             `json:"week"`
	Questions []quiz.Question `json:"questions"`
	Required  int             `json:"required"`
	Premium   bool            `json:"premium"`
	Completed bool            `json:"completed"`
}

// QuizOutcome is the result of a submitted quiz
type QuizOutcome struct {
	quiz.Result
	QuizPasses int `json:"quiz_passes"`
}

// Quiz returns this week's questions for the learner
func (s *ProgressService) Quiz(ctx context.Context, learnerID string) (*QuizView, error) {
	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if err := requireInteractable(sess, models.ActivityQuiz); err != nil {
		return nil, err
	}

	questions := s.quizQuestions(ctx, sess)
	return &QuizView{
		Week:      sess.progress.CurrentWeek,
		Questions: questions,
		Required:  quiz.PassThreshold(len(questions)),
		Premium:   sess.premium,
		Completed: sess.progress.IsCompleted(models.CompletionQuiz, models.VariantNone),
	}, nil
}

// SubmitQuiz scores answers against the same question set Quiz returned. A
// pass marks the week's quiz complete; QuizPasses counts each week once.
func (s *ProgressService) SubmitQuiz(ctx context.Context, learnerID string, answers []int) (*QuizOutcome, error) {
	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if err := requireInteractable(sess, models.ActivityQuiz); err != nil {
		return nil, err
	}

	p := sess.progress
	result := quiz.Evaluate(answers, s.quizQuestions(ctx, sess))
	if !result.Passed {
		if sess.sync.Changed {
			if err := s.commit(ctx, sess); err != nil {
				return nil, err
			}
		}
		return &QuizOutcome{Result: result, QuizPasses: p.QuizPasses}, nil
	}

	if done := s.complete(sess, models.ActivityQuiz); done.Newly {
		p.QuizPasses++
	}
	if err := s.commit(ctx, sess); err != nil {
		return nil, err
	}
	return &QuizOutcome{Result: result, QuizPasses: p.QuizPasses}, nil
}

// quizQuestions reads the authored pool, falling back to questions derived
// from the week's content, then applies the premium cap.
func (s *ProgressService) quizQuestions(ctx context.Context, sess *session) []quiz.Question {
	p := sess.progress
	var questions []quiz.Question
	if s.questions != nil {
		pool, err := s.questions.Questions(ctx, p.Age, p.CurrentWeek, p.ProgramYear)
		if err != nil {
			s.logger.Warn("question bank lookup failed, using generated questions", "learner_id", p.LearnerID, "error", err)
		}
		questions = pool
	}
	if len(questions) == 0 {
		questions = quiz.FromContent(p.Age, p.CurrentWeek, p.ProgramYear)
	}
	return quiz.Cap(questions, sess.premium)
}
