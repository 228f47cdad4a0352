package models

// Classify maps an exercise number to its duty type and time of day.
// The combat bands 128-137 and 228-237 are checked before the wider
// training bands 100-199 and 200-299; any other number counts as a
// daytime training flight.
func Classify(exercise int) (DutyType, TimeOfDay) {
	switch {
	case exercise >= 128 && exercise <= 137:
		return DutyCombat, TimeDay
	case exercise >= 228 && exercise <= 237:
		return DutyCombat, TimeNight
	case exercise >= 100 && exercise < 200:
		return DutyTraining, TimeDay
	case exercise >= 200 && exercise < 300:
		return DutyTraining, TimeNight
	default:
		return DutyTraining, TimeDay
	}
}

// KindLabel returns the display label recorded with a flight.
func KindLabel(duty DutyType) string {
	if duty == DutyCombat {
		return "Combat engagement"
	}
	return "Training"
}
