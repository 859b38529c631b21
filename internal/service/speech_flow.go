package service

import (
	"context"
	"errors"
	"fmt"

	"versekids/internal/content"
	"versekids/internal/models"
	"versekids/internal/speech"
)

// RecitationResult is the outcome of a recited verse
type RecitationResult struct {
	Matched    bool              `json:"matched"`
	Score      float64           `json:"score"`
	Reference  string            `json:"reference"`
	Completion *CompletionResult `json:"completion,omitempty"`
}

// Recite listens for the learner reciting a verse and completes the verse
// activity when enough of it matches. variant selects verse A or B for
// younger learners; an empty variant uses the day's verse. Speech failures
// never touch progress.
func (s *ProgressService) Recite(ctx context.Context, learnerID string, variant models.Variant, listener Listener) (*RecitationResult, error) {
	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	verse, kind := s.verseFor(sess, variant)
	if err := requireInteractable(sess, kind); err != nil {
		return nil, err
	}

	heard, err := listener.ListenOnce(ctx)
	if err != nil {
		if errors.Is(err, speech.ErrNoSpeech) {
			return nil, fmt.Errorf("%w: %v", ErrNoMatch, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrSpeechUnavailable, err)
	}

	matched, score := speech.Match(heard, verse.Text)
	res := &RecitationResult{Matched: matched, Score: score, Reference: verse.Reference}
	if !matched {
		s.logger.Debug("recitation did not match", "learner_id", learnerID, "score", score)
		return res, ErrNoMatch
	}

	res.Completion = s.complete(sess, kind)
	if err := s.commit(ctx, sess); err != nil {
		return nil, err
	}
	return res, nil
}

// AudioResult names the audio file for a verse
type AudioResult struct {
	File      string `json:"file"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// Audio returns the spoken version of the learner's verse
func (s *ProgressService) Audio(ctx context.Context, learnerID string, variant models.Variant) (*AudioResult, error) {
	if s.speaker == nil {
		return nil, ErrSpeechUnavailable
	}

	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	verse, _ := s.verseFor(sess, variant)
	file, err := s.speaker.Speak(ctx, verse.Text)
	if err != nil {
		s.logger.Warn("speech synthesis failed", "learner_id", learnerID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSpeechUnavailable, err)
	}
	return &AudioResult{File: file, Text: verse.Text, Reference: verse.Reference}, nil
}

// verseFor picks the verse being practised and the activity it completes
func (s *ProgressService) verseFor(sess *session, variant models.Variant) (content.Verse, models.ActivityKind) {
	p := sess.progress
	if !models.IsYounger(p.Age) {
		return content.VerseFor(p.CurrentWeek, p.Age, p.ProgramYear, sess.day()), models.ActivityTodayVerse
	}

	a, b := content.BothVersesFor(p.CurrentWeek, p.Age, p.ProgramYear)
	switch variant {
	case models.VariantA:
		return a, models.ActivityVerseA
	case models.VariantB:
		return b, models.ActivityVerseB
	}
	if content.VariantForDay(p.Age, sess.day()) == string(models.VariantB) {
		return b, models.ActivityVerseB
	}
	return a, models.ActivityVerseA
}
