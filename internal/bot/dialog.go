package bot

import (
	"fmt"

	"github.com/smagulov/flightlog/internal/models"
	"github.com/smagulov/flightlog/internal/parser"
	"github.com/smagulov/flightlog/internal/session"
)

const (
	promptExercise = "Enter the exercise number:"
	promptHours    = "Enter flight hours:"
	promptMinutes  = "Enter flight minutes:"
	promptDate     = "Enter the date (YYYY-MM-DD) or send \"-\" for today:"

	retryExercise = "Please enter a valid exercise number (whole number)."
	retryHours    = "Please enter flight hours (whole number)."
	retryMinutes  = "Please enter flight minutes (whole number)."
	retryDate     = "Please enter the date as YYYY-MM-DD or send \"-\"."
)

// beginEntry opens a fresh dialogue, discarding any answers a parked
// one had accumulated.
func (r *Router) beginEntry(userID int64) []Reply {
	r.sessions.Set(userID, session.Session{Step: session.StepExercise})
	return text(promptExercise)
}

// handleStep advances the entry dialogue by one answer. A failed
// parse re-prompts the same step and never advances; the dialogue has
// no way to abort short of finishing or starting over.
func (r *Router) handleStep(userID int64, sess session.Session, input string) []Reply {
	switch sess.Step {
	case session.StepExercise:
		n, err := parser.ParseNumber(input)
		if err != nil {
			return text(retryExercise)
		}
		sess.Exercise = n
		sess.Step = session.StepHours
		r.sessions.Set(userID, sess)
		return text(promptHours)

	case session.StepHours:
		n, err := parser.ParseNumber(input)
		if err != nil {
			return text(retryHours)
		}
		sess.Hours = n
		sess.Step = session.StepMinutes
		r.sessions.Set(userID, sess)
		return text(promptMinutes)

	case session.StepMinutes:
		n, err := parser.ParseNumber(input)
		if err != nil {
			return text(retryMinutes)
		}
		sess.Minutes = n
		sess.Step = session.StepDate
		r.sessions.Set(userID, sess)
		return text(promptDate)

	case session.StepDate:
		date, err := parser.ParseFlightDate(input, r.now())
		if err != nil {
			return text(retryDate)
		}
		return r.finishEntry(userID, sess, date)
	}
	return nil
}

func (r *Router) finishEntry(userID int64, sess session.Session, date string) []Reply {
	duty, timeOfDay := models.Classify(sess.Exercise)
	rec := models.FlightRecord{
		Date:       date,
		Exercise:   sess.Exercise,
		Hours:      sess.Hours,
		Minutes:    sess.Minutes,
		FlightKind: models.KindLabel(duty),
		TimeOfDay:  timeOfDay,
		DutyType:   duty,
	}
	if err := r.store.Append(userID, rec); err != nil {
		return r.storeError(userID, err)
	}
	r.sessions.Clear(userID)

	confirmation := fmt.Sprintf(
		"Record added!\nDate: %s\nExercise: %d\nHours: %d\nMinutes: %d\nKind: %s\nTime of day: %s",
		rec.Date, rec.Exercise, rec.Hours, rec.Minutes, rec.FlightKind, rec.TimeOfDay,
	)
	return text(confirmation)
}
