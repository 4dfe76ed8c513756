package board

import (
	"testing"

	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() railnet.ScheduleEntry {
	return railnet.ScheduleEntry{
		ID:          1,
		TrainNumber: "TER 895631",
		TrainType:   "TER",

		DepartureStationID:   7,
		DepartureStationCode: "DGV",
		DepartureStationName: "Dijon-Ville",
		DepartureTime:        "10:00",

		ArrivalStationID:   8,
		ArrivalStationCode: "BES",
		ArrivalStationName: "Besançon-Viotte",
		ArrivalTime:        "12:00",

		Stops: railnet.StopList{
			{StationID: 9, StationCode: "AXN", StationName: "Auxonne", ArrivalTime: "10:30", DepartureTime: "10:32"},
			{StationID: 10, StationCode: "DOL", StationName: "Dole-Ville", ArrivalTime: "11:00", DepartureTime: "11:02", Platform: "B"},
		},

		Circulation: railnet.WeeklyCirculationPattern{
			Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
		},
	}
}

func testInstance(changes ...railnet.ItineraryChange) railnet.EffectiveScheduleInstance {
	return railnet.EffectiveScheduleInstance{
		ScheduleEntry:    testSchedule(),
		ItineraryChanges: changes,
	}
}

func stationCodes(itinerary []railnet.ItineraryStop) []string {
	var codes []string
	for _, stop := range itinerary {
		codes = append(codes, stop.StationCode)
	}

	return codes
}

func TestBuildItineraryNominal(t *testing.T) {
	itinerary := BuildItinerary(testInstance())

	assert.Equal(t, []string{"DGV", "AXN", "DOL", "BES"}, stationCodes(itinerary))

	assert.Equal(t, "10:00", itinerary[0].DepartureTime)
	assert.Equal(t, "", itinerary[0].ArrivalTime)
	assert.Equal(t, "12:00", itinerary[3].ArrivalTime)
	assert.Equal(t, "", itinerary[3].DepartureTime)

	for _, stop := range itinerary {
		assert.False(t, stop.Perturbed)
	}
}

func TestBuildItineraryMergesChangeIntoExistingStop(t *testing.T) {
	itinerary := BuildItinerary(testInstance(railnet.ItineraryChange{
		StationCode:   "DOL",
		Action:        railnet.ChangeActionRetard,
		DelayMinutes:  5,
		DepartureTime: "11:10",
		Cause:         "croisement",
	}))

	require.Equal(t, []string{"DGV", "AXN", "DOL", "BES"}, stationCodes(itinerary))

	dole := itinerary[2]
	assert.True(t, dole.Perturbed)
	assert.Equal(t, railnet.ChangeActionRetard, dole.Action)
	assert.Equal(t, 5, dole.ChangeDelay)
	assert.Equal(t, "11:10", dole.DepartureTime)
	assert.Equal(t, "11:00", dole.ArrivalTime)
	assert.Equal(t, "B", dole.Platform)
	assert.Equal(t, "croisement", dole.Cause)
}

func TestBuildItineraryMatchesChangeByName(t *testing.T) {
	// Changes frequently carry only a display name, with accents dropped
	itinerary := BuildItinerary(testInstance(railnet.ItineraryChange{
		StationName: "besancon viotte",
		Action:      railnet.ChangeActionSuppression,
	}))

	require.Equal(t, []string{"DGV", "AXN", "DOL", "BES"}, stationCodes(itinerary))
	assert.Equal(t, railnet.ChangeActionSuppression, itinerary[3].Action)
}

func TestBuildItineraryInsertsUnknownStop(t *testing.T) {
	t.Run("at explicit index", func(t *testing.T) {
		index := 2
		itinerary := BuildItinerary(testInstance(railnet.ItineraryChange{
			StationCode: "GVL",
			StationName: "Genlis",
			Action:      "ajout",
			Index:       &index,
		}))

		assert.Equal(t, []string{"DGV", "AXN", "GVL", "DOL", "BES"}, stationCodes(itinerary))
		assert.True(t, itinerary[2].Perturbed)
	})

	t.Run("appended without index", func(t *testing.T) {
		itinerary := BuildItinerary(testInstance(railnet.ItineraryChange{
			StationCode: "GVL",
			Action:      "ajout",
		}))

		assert.Equal(t, []string{"DGV", "AXN", "DOL", "BES", "GVL"}, stationCodes(itinerary))
	})

	t.Run("out of range index is clamped", func(t *testing.T) {
		index := 40
		itinerary := BuildItinerary(testInstance(railnet.ItineraryChange{
			StationCode: "GVL",
			Action:      "ajout",
			Index:       &index,
		}))

		assert.Equal(t, []string{"DGV", "AXN", "DOL", "BES", "GVL"}, stationCodes(itinerary))
	})
}

func TestBuildItineraryMovesStopToExplicitIndex(t *testing.T) {
	index := 1
	itinerary := BuildItinerary(testInstance(railnet.ItineraryChange{
		StationCode: "DOL",
		Index:       &index,
	}))

	assert.Equal(t, []string{"DGV", "DOL", "AXN", "BES"}, stationCodes(itinerary))
}

func TestBuildItineraryMatchesChangeBySubstringName(t *testing.T) {
	// A change referencing a stop by partial name still lands on that stop
	itinerary := BuildItinerary(testInstance(
		railnet.ItineraryChange{StationName: "Dole", Action: railnet.ChangeActionRetard, DelayMinutes: 5},
	))

	require.Equal(t, []string{"DGV", "AXN", "DOL", "BES"}, stationCodes(itinerary))
	assert.True(t, itinerary[2].Perturbed)
	assert.Equal(t, 5, itinerary[2].ChangeDelay)
	assert.Equal(t, "11:00", itinerary[2].ArrivalTime)
}

func TestBuildItineraryDeduplicates(t *testing.T) {
	// Source data sometimes repeats the origin inside the stop list
	schedule := testSchedule()
	schedule.Stops = append(railnet.StopList{
		{StationID: 7, StationCode: "DGV", StationName: "Dijon-Ville", DepartureTime: "10:00", Platform: "2"},
	}, schedule.Stops...)

	itinerary := BuildItinerary(railnet.EffectiveScheduleInstance{ScheduleEntry: schedule})

	assert.Equal(t, []string{"DGV", "AXN", "DOL", "BES"}, stationCodes(itinerary))
	assert.Equal(t, "2", itinerary[0].Platform)
}

func TestBuildItineraryMergesRepeatedChanges(t *testing.T) {
	instance := testInstance(
		railnet.ItineraryChange{StationCode: "DOL", DelayMinutes: 5},
		railnet.ItineraryChange{StationCode: "DOL", DelayMinutes: 3},
	)

	itinerary := BuildItinerary(instance)

	assert.Equal(t, []string{"DGV", "AXN", "DOL", "BES"}, stationCodes(itinerary))
	// Largest of the two change delays is retained
	assert.Equal(t, 5, itinerary[2].ChangeDelay)
}

func TestNewTerminus(t *testing.T) {
	t.Run("last change with action none designates the terminus", func(t *testing.T) {
		instance := testInstance(
			railnet.ItineraryChange{StationCode: "BES", Action: railnet.ChangeActionSuppression},
			railnet.ItineraryChange{StationCode: "DOL", Action: railnet.ChangeActionNone},
		)

		terminus, ok := NewTerminus(instance)
		require.True(t, ok)
		assert.Equal(t, "DOL", terminus.Code)

		itinerary := BuildItinerary(instance)
		assert.True(t, itinerary[2].NewTerminus)
	})

	t.Run("no override when the last change acts on its stop", func(t *testing.T) {
		_, ok := NewTerminus(testInstance(
			railnet.ItineraryChange{StationCode: "DOL", Action: railnet.ChangeActionNone},
			railnet.ItineraryChange{StationCode: "BES", Action: railnet.ChangeActionSuppression},
		))

		assert.False(t, ok)
	})

	t.Run("no override without changes", func(t *testing.T) {
		_, ok := NewTerminus(testInstance())

		assert.False(t, ok)
	})
}

func TestSliceForDirection(t *testing.T) {
	itinerary := BuildItinerary(testInstance())
	dole := railnet.StationRef{Code: "DOL"}

	departures := SliceForDirection(itinerary, dole, railnet.DirectionDeparture)
	assert.Equal(t, []string{"DOL", "BES"}, stationCodes(departures))

	arrivals := SliceForDirection(itinerary, dole, railnet.DirectionArrival)
	assert.Equal(t, []string{"DGV", "AXN", "DOL"}, stationCodes(arrivals))

	unmatched := SliceForDirection(itinerary, railnet.StationRef{Code: "XYZ"}, railnet.DirectionDeparture)
	assert.Len(t, unmatched, 4)
}
