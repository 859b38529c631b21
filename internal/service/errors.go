package service

import "errors"

var (
	// ErrActivityLocked is returned when an activity is not interactable right now
	ErrActivityLocked = errors.New("activity is locked")
	// ErrNotCompletable is returned for activities that complete through their own flow
	ErrNotCompletable = errors.New("activity is completed by playing it")
	// ErrNoActiveGame is returned when a book game action arrives with no live game
	ErrNoActiveGame = errors.New("no active book game")
	// ErrSpeechUnavailable wraps failures of the speech engines
	ErrSpeechUnavailable = errors.New("speech service unavailable")
	// ErrNoMatch is returned when a recitation does not match the verse
	ErrNoMatch = errors.New("recitation did not match")
	// ErrForbidden is returned when a learner belongs to another account
	ErrForbidden = errors.New("learner belongs to another account")
)
