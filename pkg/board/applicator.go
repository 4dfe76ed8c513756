package board

import (
	"time"

	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// BuildEffectiveInstance merges every applicable perturbation into a fresh
// per-date materialisation of the schedule entry. The largest requested delay
// wins (delays are never summed), the first non-empty changes list wins, and
// the instance is cancelled only when a perturbation of type suppression
// applies.
func BuildEffectiveInstance(schedule railnet.ScheduleEntry, perturbations []railnet.Perturbation, date time.Time) railnet.EffectiveScheduleInstance {
	instance := railnet.EffectiveScheduleInstance{
		Date: date,
	}

	if err := copier.Copy(&instance.ScheduleEntry, &schedule); err != nil {
		log.Warn().Err(err).Int64("schedule", schedule.ID).Msg("Failed to copy schedule entry")
		instance.ScheduleEntry = schedule
	}

	applicable := MatchingPerturbations(schedule, perturbations, date)
	if len(applicable) == 0 {
		return instance
	}

	for _, perturbation := range applicable {
		if delay := int(perturbation.DelayMinutes); delay > instance.DelayMinutes {
			instance.DelayMinutes = delay
		}

		if len(instance.ItineraryChanges) == 0 && len(perturbation.ItineraryChanges) > 0 {
			instance.ItineraryChanges = append([]railnet.ItineraryChange{}, perturbation.ItineraryChanges...)
		}

		if perturbation.Type == railnet.PerturbationTypeSuppression && !instance.Cancelled {
			instance.Cancelled = true
			instance.CancellationCause = perturbation.CancellationCause()
		}
	}

	instance.AppliedPerturbations = applicable

	return instance
}
