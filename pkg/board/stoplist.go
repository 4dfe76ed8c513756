package board

import (
	"github.com/gareboard/gareboard/pkg/railnet"
	"golang.org/x/exp/slices"
)

// BuildItinerary produces the deduplicated ordered itinerary of an effective
// schedule instance: origin, intermediate stops, terminus, with every
// perturbation-provided itinerary change folded in.
func BuildItinerary(instance railnet.EffectiveScheduleInstance) []railnet.ItineraryStop {
	originRef := instance.DepartureRef()
	destinationRef := instance.ArrivalRef()

	itinerary := make([]railnet.ItineraryStop, 0, len(instance.Stops)+2)

	itinerary = append(itinerary, railnet.ItineraryStop{Stop: railnet.Stop{
		StationID:     originRef.ID,
		StationCode:   originRef.Code,
		StationName:   originRef.Name,
		DepartureTime: instance.DepartureTime,
	}})

	for _, stop := range instance.Stops {
		itinerary = append(itinerary, railnet.ItineraryStop{Stop: stop})
	}

	itinerary = append(itinerary, railnet.ItineraryStop{Stop: railnet.Stop{
		StationID:   destinationRef.ID,
		StationCode: destinationRef.Code,
		StationName: destinationRef.Name,
		ArrivalTime: instance.ArrivalTime,
	}})

	for _, change := range instance.ItineraryChanges {
		itinerary = applyItineraryChange(itinerary, change, originRef, destinationRef)
	}

	itinerary = dedupItinerary(itinerary)

	if terminus, ok := NewTerminus(instance); ok {
		if index := findStop(itinerary, terminus); index >= 0 {
			itinerary[index].NewTerminus = true
		}
	}

	return itinerary
}

// NewTerminus returns the rerouted terminus of the instance, if its last
// itinerary change (in original list order) carries the action "none".
func NewTerminus(instance railnet.EffectiveScheduleInstance) (railnet.StationRef, bool) {
	if len(instance.ItineraryChanges) == 0 {
		return railnet.StationRef{}, false
	}

	last := instance.ItineraryChanges[len(instance.ItineraryChanges)-1]
	if !last.Action.IsNone() {
		return railnet.StationRef{}, false
	}

	ref := last.Ref()
	if ref.IsEmpty() {
		return railnet.StationRef{}, false
	}

	return ref, true
}

// SliceForDirection cuts the itinerary at the queried station - from it to
// the end for a departure board, from the start through it for an arrival
// board. An unmatched station leaves the itinerary whole.
func SliceForDirection(itinerary []railnet.ItineraryStop, station railnet.StationRef, direction railnet.Direction) []railnet.ItineraryStop {
	index := findStop(itinerary, station)
	if index < 0 {
		return itinerary
	}

	if direction == railnet.DirectionArrival {
		return itinerary[:index+1]
	}

	return itinerary[index:]
}

func findStop(itinerary []railnet.ItineraryStop, ref railnet.StationRef) int {
	return slices.IndexFunc(itinerary, func(stop railnet.ItineraryStop) bool {
		return railnet.SameStation(stop.Ref(), ref)
	})
}

func applyItineraryChange(itinerary []railnet.ItineraryStop, change railnet.ItineraryChange, originRef railnet.StationRef, destinationRef railnet.StationRef) []railnet.ItineraryStop {
	index := findStop(itinerary, change.Ref())

	if index >= 0 {
		mergeChange(&itinerary[index], change)

		if target, ok := change.ExplicitIndex(); ok && target != index {
			itinerary = moveStop(itinerary, index, target)
		}

		return itinerary
	}

	synthesised := stopFromChange(change)

	if target, ok := change.ExplicitIndex(); ok {
		return slices.Insert(itinerary, clampIndex(target, len(itinerary)), synthesised)
	}

	if railnet.SameStation(change.Ref(), originRef) {
		return slices.Insert(itinerary, 0, synthesised)
	}

	// A destination match and the default case both go to the tail
	return append(itinerary, synthesised)
}

func stopFromChange(change railnet.ItineraryChange) railnet.ItineraryStop {
	return railnet.ItineraryStop{
		Stop: railnet.Stop{
			StationID:     change.StationID,
			StationCode:   change.StationCode,
			StationName:   change.StationName,
			ArrivalTime:   change.ArrivalTime,
			DepartureTime: change.DepartureTime,
			Platform:      change.Platform,
		},
		Perturbed:   true,
		Action:      change.Action,
		ChangeDelay: int(change.DelayMinutes),
		Cause:       change.Cause,
	}
}

// mergeChange overlays only the fields the change specifies; identity fields
// are filled in when missing rather than overwritten.
func mergeChange(stop *railnet.ItineraryStop, change railnet.ItineraryChange) {
	if stop.StationID == 0 {
		stop.StationID = change.StationID
	}
	if stop.StationCode == "" {
		stop.StationCode = change.StationCode
	}
	if stop.StationName == "" {
		stop.StationName = change.StationName
	}

	if change.ArrivalTime != "" {
		stop.ArrivalTime = change.ArrivalTime
	}
	if change.DepartureTime != "" {
		stop.DepartureTime = change.DepartureTime
	}
	if change.Platform != "" {
		stop.Platform = change.Platform
	}
	if change.Cause != "" {
		stop.Cause = change.Cause
	}
	if change.Action != "" {
		stop.Action = change.Action
	}
	if delay := int(change.DelayMinutes); delay > stop.ChangeDelay {
		stop.ChangeDelay = delay
	}

	stop.Perturbed = true
}

func moveStop(itinerary []railnet.ItineraryStop, from int, to int) []railnet.ItineraryStop {
	moved := itinerary[from]
	itinerary = slices.Delete(itinerary, from, from+1)

	return slices.Insert(itinerary, clampIndex(to, len(itinerary)), moved)
}

func clampIndex(index int, length int) int {
	if index < 0 {
		return 0
	}
	if index > length {
		return length
	}

	return index
}

// dedupItinerary collapses stops sharing a station identity into one record,
// preferring the perturbation-carrying copy and filling gaps from the other.
// First-seen order is preserved.
func dedupItinerary(itinerary []railnet.ItineraryStop) []railnet.ItineraryStop {
	deduped := make([]railnet.ItineraryStop, 0, len(itinerary))

	for _, stop := range itinerary {
		existing := slices.IndexFunc(deduped, func(candidate railnet.ItineraryStop) bool {
			return railnet.SameStationStrict(candidate.Ref(), stop.Ref())
		})

		if existing < 0 {
			deduped = append(deduped, stop)
			continue
		}

		deduped[existing] = mergeDuplicates(deduped[existing], stop)
	}

	return deduped
}

func mergeDuplicates(first railnet.ItineraryStop, second railnet.ItineraryStop) railnet.ItineraryStop {
	kept, other := first, second
	if !kept.Perturbed && other.Perturbed {
		kept, other = other, kept
	}

	if kept.StationID == 0 {
		kept.StationID = other.StationID
	}
	if kept.StationCode == "" {
		kept.StationCode = other.StationCode
	}
	if kept.StationName == "" {
		kept.StationName = other.StationName
	}
	if kept.ArrivalTime == "" {
		kept.ArrivalTime = other.ArrivalTime
	}
	if kept.DepartureTime == "" {
		kept.DepartureTime = other.DepartureTime
	}
	if kept.Platform == "" {
		kept.Platform = other.Platform
	}
	if kept.Cause == "" {
		kept.Cause = other.Cause
	}
	if kept.Action == "" {
		kept.Action = other.Action
	}
	if other.ChangeDelay > kept.ChangeDelay {
		kept.ChangeDelay = other.ChangeDelay
	}

	kept.Perturbed = kept.Perturbed || other.Perturbed
	kept.NewTerminus = kept.NewTerminus || other.NewTerminus

	return kept
}
