package stats

import (
	"fmt"
	"time"

	"github.com/smagulov/flightlog/internal/models"
	"github.com/smagulov/flightlog/internal/parser"
)

// Total is a flight-time sum in minutes.
type Total int

// String renders a total as whole hours and leftover minutes.
// Anything at or below zero reads "0 h 0 min".
func (t Total) String() string {
	if t <= 0 {
		return "0 h 0 min"
	}
	return fmt.Sprintf("%d h %d min", t/60, t%60)
}

// Breakdown is one reported slice: everything plus the day/night split.
type Breakdown struct {
	All   Total
	Day   Total
	Night Total
}

func (b *Breakdown) add(tod models.TimeOfDay, minutes Total) {
	b.All += minutes
	switch tod {
	case models.TimeDay:
		b.Day += minutes
	case models.TimeNight:
		b.Night += minutes
	}
}

// Report holds the eighteen reported totals: four date windows plus
// the unwindowed combat and training splits.
type Report struct {
	AllTime     Breakdown
	Year        Breakdown
	Month       Breakdown
	Last3Months Breakdown
	Combat      Breakdown
	Training    Breakdown
}

// Aggregate sums flight time over all records, windowed against asOf.
// A record whose stored date no longer parses is left out of the date
// windows but still counts toward the all-time and duty totals.
func Aggregate(records []models.FlightRecord, asOf time.Time) Report {
	// Window boundary at midnight so a flight exactly three calendar
	// months old is still inside it.
	threshold := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, -3, 0)

	var r Report
	for _, rec := range records {
		minutes := Total(rec.Hours*60 + rec.Minutes)

		r.AllTime.add(rec.TimeOfDay, minutes)
		switch rec.DutyType {
		case models.DutyCombat:
			r.Combat.add(rec.TimeOfDay, minutes)
		case models.DutyTraining:
			r.Training.add(rec.TimeOfDay, minutes)
		}

		date, err := time.Parse(parser.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		if date.Year() == asOf.Year() {
			r.Year.add(rec.TimeOfDay, minutes)
			if date.Month() == asOf.Month() {
				r.Month.add(rec.TimeOfDay, minutes)
			}
		}
		if !date.Before(threshold) {
			r.Last3Months.add(rec.TimeOfDay, minutes)
		}
	}
	return r
}
