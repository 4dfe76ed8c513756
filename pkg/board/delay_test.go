package board

import (
	"testing"

	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/stretchr/testify/assert"
)

func TestDelayForStopExplicitChangeWins(t *testing.T) {
	instance := testInstance(railnet.ItineraryChange{
		StationCode:  "DOL",
		Action:       railnet.ChangeActionRetard,
		DelayMinutes: 5,
		Cause:        "croisement",
	})
	instance.DelayMinutes = 20

	itinerary := BuildItinerary(instance)
	index := findStop(itinerary, railnet.StationRef{Code: "DOL"})

	delay := DelayForStop(instance, itinerary[index], index, itinerary)

	assert.Equal(t, 5, delay.Minutes)
	assert.Equal(t, "croisement", delay.Cause)
	assert.False(t, delay.Propagated)
}

func TestDelayForStopRetardActionWithoutMinutesUsesGlobalDelay(t *testing.T) {
	instance := testInstance(railnet.ItineraryChange{
		StationCode: "DOL",
		Action:      railnet.ChangeActionRetard,
	})
	instance.DelayMinutes = 15

	itinerary := BuildItinerary(instance)
	index := findStop(itinerary, railnet.StationRef{Code: "DOL"})

	delay := DelayForStop(instance, itinerary[index], index, itinerary)

	assert.Equal(t, 15, delay.Minutes)
}

func TestDelayForStopGlobalDelayApplies(t *testing.T) {
	instance := testInstance()
	instance.DelayMinutes = 10
	instance.AppliedPerturbations = []railnet.Perturbation{
		{Type: railnet.PerturbationTypeRetard, DelayMinutes: 10, Cause: "incendie aux abords de la voie"},
	}

	itinerary := BuildItinerary(instance)

	for index, stop := range itinerary {
		delay := DelayForStop(instance, stop, index, itinerary)

		assert.Equal(t, 10, delay.Minutes)
		assert.Equal(t, "incendie aux abords de la voie", delay.Cause)
		assert.False(t, delay.Propagated)
	}
}

func TestDelayForStopPropagatesFromPrecedingChange(t *testing.T) {
	instance := testInstance(railnet.ItineraryChange{
		StationCode:  "AXN",
		Action:       railnet.ChangeActionRetard,
		DelayMinutes: 8,
		Cause:        "colis suspect",
	})

	itinerary := BuildItinerary(instance)

	// Stops after the delayed one inherit its delay
	for _, code := range []string{"DOL", "BES"} {
		index := findStop(itinerary, railnet.StationRef{Code: code})
		delay := DelayForStop(instance, itinerary[index], index, itinerary)

		assert.Equal(t, 8, delay.Minutes)
		assert.Equal(t, "colis suspect", delay.Cause)
		assert.True(t, delay.Propagated)
	}

	// Stops before it do not
	origin := findStop(itinerary, railnet.StationRef{Code: "DGV"})
	delay := DelayForStop(instance, itinerary[origin], origin, itinerary)
	assert.Zero(t, delay.Minutes)
}

func TestDelayForStopClosestPrecedingChangeWins(t *testing.T) {
	instance := testInstance(
		railnet.ItineraryChange{StationCode: "DGV", Action: railnet.ChangeActionRetard, DelayMinutes: 20},
		railnet.ItineraryChange{StationCode: "DOL", Action: railnet.ChangeActionRetard, DelayMinutes: 4},
	)

	itinerary := BuildItinerary(instance)
	terminus := findStop(itinerary, railnet.StationRef{Code: "BES"})

	delay := DelayForStop(instance, itinerary[terminus], terminus, itinerary)

	assert.Equal(t, 4, delay.Minutes)
	assert.True(t, delay.Propagated)
}

func TestDelayForStopNoDelay(t *testing.T) {
	instance := testInstance()
	itinerary := BuildItinerary(instance)

	delay := DelayForStop(instance, itinerary[0], 0, itinerary)

	assert.Zero(t, delay.Minutes)
	assert.Empty(t, delay.Cause)
	assert.False(t, delay.Propagated)
}

func TestEstimatedTime(t *testing.T) {
	assert.Equal(t, "10:10", EstimatedTime("10:00", 10))
	assert.Equal(t, "", EstimatedTime("10:00", 0))
	assert.Equal(t, "", EstimatedTime("", 10))
}

func TestIsStopSuppressed(t *testing.T) {
	t.Run("explicit action", func(t *testing.T) {
		instance := testInstance(railnet.ItineraryChange{
			StationCode: "DOL",
			Action:      railnet.ChangeActionSuppression,
		})

		itinerary := BuildItinerary(instance)
		index := findStop(itinerary, railnet.StationRef{Code: "DOL"})

		assert.True(t, IsStopSuppressed(instance, itinerary[index], itinerary))
		assert.False(t, IsStopSuppressed(instance, itinerary[0], itinerary))
	})

	t.Run("action variant", func(t *testing.T) {
		instance := testInstance(railnet.ItineraryChange{
			StationCode: "DOL",
			Action:      "suppression_arret",
		})

		itinerary := BuildItinerary(instance)
		index := findStop(itinerary, railnet.StationRef{Code: "DOL"})

		assert.True(t, IsStopSuppressed(instance, itinerary[index], itinerary))
	})

	t.Run("cancellation suppresses every stop absent finer information", func(t *testing.T) {
		instance := testInstance()
		instance.Cancelled = true

		itinerary := BuildItinerary(instance)

		for _, stop := range itinerary {
			assert.True(t, IsStopSuppressed(instance, stop, itinerary))
		}
	})

	t.Run("cancellation defers to stop level suppressions", func(t *testing.T) {
		instance := testInstance(railnet.ItineraryChange{
			StationCode: "DOL",
			Action:      railnet.ChangeActionSuppression,
		})
		instance.Cancelled = true

		itinerary := BuildItinerary(instance)
		dole := findStop(itinerary, railnet.StationRef{Code: "DOL"})

		assert.True(t, IsStopSuppressed(instance, itinerary[dole], itinerary))
		assert.False(t, IsStopSuppressed(instance, itinerary[0], itinerary))
	})
}

func TestAnnotateItinerary(t *testing.T) {
	instance := testInstance(railnet.ItineraryChange{
		StationCode:  "AXN",
		Action:       railnet.ChangeActionRetard,
		DelayMinutes: 8,
		Cause:        "colis suspect",
	})

	itinerary := AnnotateItinerary(instance, BuildItinerary(instance))

	auxonne := itinerary[1]
	assert.Equal(t, 8, auxonne.DelayMinutes)
	assert.False(t, auxonne.DelayPropagated)
	assert.Equal(t, "10:38", auxonne.EstimatedArrivalTime)
	assert.Equal(t, "10:40", auxonne.EstimatedDepartureTime)

	dole := itinerary[2]
	assert.Equal(t, 8, dole.DelayMinutes)
	assert.True(t, dole.DelayPropagated)
	assert.Equal(t, "colis suspect", dole.Cause)
	assert.Equal(t, "11:08", dole.EstimatedArrivalTime)

	origin := itinerary[0]
	assert.Zero(t, origin.DelayMinutes)
	assert.Empty(t, origin.EstimatedDepartureTime)
	assert.False(t, origin.Suppressed)
}
