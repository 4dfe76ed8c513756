package board

import (
	"time"

	"github.com/gareboard/gareboard/pkg/railnet"
)

// Matches reports whether a perturbation targets a schedule entry - by
// schedule id, with the train number as a fallback key.
func Matches(perturbation railnet.Perturbation, schedule railnet.ScheduleEntry) bool {
	if perturbation.ScheduleID != 0 && perturbation.ScheduleID == schedule.ID {
		return true
	}

	return perturbation.TrainNumber != "" &&
		schedule.TrainNumber != "" &&
		perturbation.TrainNumber == schedule.TrainNumber
}

// AppliesOn reports whether a perturbation is active on a date. An empty
// jours_impact list means the perturbation always applies; otherwise any
// entry matching the date - as a literal calendar date or as a weekday
// abbreviation - is enough.
func AppliesOn(perturbation railnet.Perturbation, date time.Time) bool {
	if len(perturbation.ImpactDays) == 0 {
		return true
	}

	for _, entry := range perturbation.ImpactDays {
		if parsed, ok := railnet.ParseFlexibleDate(entry); ok {
			if railnet.SameCalendarDay(parsed, date) {
				return true
			}
			continue
		}

		if railnet.MatchesWeekday(entry, date.Weekday()) {
			return true
		}
	}

	return false
}

// MatchingPerturbations filters to those that target the schedule and apply
// on the date, preserving their given order.
func MatchingPerturbations(schedule railnet.ScheduleEntry, perturbations []railnet.Perturbation, date time.Time) []railnet.Perturbation {
	var applicable []railnet.Perturbation

	for _, perturbation := range perturbations {
		if Matches(perturbation, schedule) && AppliesOn(perturbation, date) {
			applicable = append(applicable, perturbation)
		}
	}

	return applicable
}
