package board

import (
	"github.com/gareboard/gareboard/pkg/railnet"
)

// StopDelay is the computed display delay for one stop of an itinerary.
type StopDelay struct {
	Minutes    int
	Cause      string
	Propagated bool
}

// DelayForStop resolves the displayed delay for a stop. Priority: an
// explicit change on that exact stop, then the instance-level delay, then
// propagation from the closest preceding change that implies a delay, then
// zero.
func DelayForStop(instance railnet.EffectiveScheduleInstance, stop railnet.ItineraryStop, stopIndex int, itinerary []railnet.ItineraryStop) StopDelay {
	if stop.Action.ImpliesDelay() || stop.ChangeDelay > 0 {
		minutes := stop.ChangeDelay
		if minutes <= 0 {
			minutes = instance.DelayMinutes
		}

		return StopDelay{Minutes: minutes, Cause: stop.Cause}
	}

	if instance.DelayMinutes > 0 {
		return StopDelay{Minutes: instance.DelayMinutes, Cause: instance.GlobalDelayCause()}
	}

	// Closest preceding change wins - a plain linear scan over the change
	// list, resolving each target to its itinerary index
	bestIndex := -1
	var bestChange railnet.ItineraryChange

	for _, change := range instance.ItineraryChanges {
		if !changeImpliesDelay(change) {
			continue
		}

		index := resolveChangeIndex(change, itinerary)
		if index >= 0 && index < stopIndex && index > bestIndex {
			bestIndex = index
			bestChange = change
		}
	}

	if bestIndex >= 0 {
		return StopDelay{
			Minutes:    int(bestChange.DelayMinutes),
			Cause:      bestChange.Cause,
			Propagated: true,
		}
	}

	return StopDelay{}
}

func changeImpliesDelay(change railnet.ItineraryChange) bool {
	return change.Action.ImpliesDelay() || int(change.DelayMinutes) > 0
}

func resolveChangeIndex(change railnet.ItineraryChange, itinerary []railnet.ItineraryStop) int {
	if index, ok := change.ExplicitIndex(); ok {
		if index >= 0 && index < len(itinerary) {
			return index
		}
		return -1
	}

	return findStop(itinerary, change.Ref())
}

// EstimatedTime shifts a scheduled display time by a delay, wrapping at 24h.
// With no scheduled time the estimate is undefined and stays empty.
func EstimatedTime(originalTime string, delayMinutes int) string {
	if delayMinutes <= 0 {
		return ""
	}

	return railnet.AddMinutesToClock(originalTime, delayMinutes)
}

// IsStopSuppressed - a stop is suppressed when it carries an explicit
// suppression action, or when the whole instance is cancelled and no other
// stop carries one. A global cancellation only implies per-stop suppression
// in the absence of finer-grained suppression information.
func IsStopSuppressed(instance railnet.EffectiveScheduleInstance, stop railnet.ItineraryStop, itinerary []railnet.ItineraryStop) bool {
	if stop.Action.IsSuppression() {
		return true
	}

	if !instance.Cancelled {
		return false
	}

	for _, other := range itinerary {
		if other.Action.IsSuppression() {
			return false
		}
	}

	return true
}

// AnnotateItinerary fills in the computed display fields of every stop:
// delay, cause, suppression and estimated times.
func AnnotateItinerary(instance railnet.EffectiveScheduleInstance, itinerary []railnet.ItineraryStop) []railnet.ItineraryStop {
	annotated := make([]railnet.ItineraryStop, len(itinerary))

	for index, stop := range itinerary {
		delay := DelayForStop(instance, stop, index, itinerary)

		stop.DelayMinutes = delay.Minutes
		stop.DelayPropagated = delay.Propagated
		if stop.Cause == "" {
			stop.Cause = delay.Cause
		}

		stop.Suppressed = IsStopSuppressed(instance, stop, itinerary)

		stop.EstimatedArrivalTime = EstimatedTime(stop.ArrivalTime, delay.Minutes)
		stop.EstimatedDepartureTime = EstimatedTime(stop.DepartureTime, delay.Minutes)

		annotated[index] = stop
	}

	return annotated
}
