package board

import (
	"sort"
	"strings"
	"time"

	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/gareboard/gareboard/pkg/util"
	iso8601 "github.com/senseyeio/duration"
	"github.com/sourcegraph/conc/pool"
)

// Board is the full result of one station board computation - two sections
// sharing no schedule id.
type Board struct {
	Today    []*railnet.BoardEntry `groups:"basic,detailed"`
	Tomorrow []*railnet.BoardEntry `groups:"basic,detailed"`
}

// Generate computes the board for a station and direction. It is a pure
// function of its inputs - schedules, perturbations and the station directory
// are fully materialised collections fetched by the caller.
func Generate(station railnet.StationRef, direction railnet.Direction, schedules []railnet.ScheduleEntry, perturbations []railnet.Perturbation, directory *railnet.Directory, now time.Time) *Board {
	station = directory.Canonicalise(station)

	candidates := filterCandidates(station, direction, schedules)

	today := generateSection(station, direction, candidates, perturbations, directory, now, true, nil)

	alreadyShown := map[int64]bool{}
	for _, entry := range today {
		alreadyShown[entry.ScheduleID] = true
	}

	nextDayDuration, _ := iso8601.ParseISO8601("P1D")
	dayAfterDateTime := nextDayDuration.Shift(now)
	dayAfterDateTime = time.Date(
		dayAfterDateTime.Year(), dayAfterDateTime.Month(), dayAfterDateTime.Day(), 0, 0, 0, 0, dayAfterDateTime.Location(),
	)

	tomorrow := generateSection(station, direction, candidates, perturbations, directory, dayAfterDateTime, false, alreadyShown)

	sortEntries(today)
	sortEntries(tomorrow)

	return &Board{Today: today, Tomorrow: tomorrow}
}

// EffectiveItinerary builds the annotated per-stop itinerary of one schedule
// on one date, for on-demand expansion of a board row.
func EffectiveItinerary(schedule railnet.ScheduleEntry, perturbations []railnet.Perturbation, date time.Time) []railnet.ItineraryStop {
	instance := BuildEffectiveInstance(schedule, perturbations, date)

	return AnnotateItinerary(instance, BuildItinerary(instance))
}

// filterCandidates keeps the schedules whose unperturbed itinerary serves the
// station in the queried direction. Candidacy is always judged against the
// nominal schedule; perturbations are applied later, per date. A stop only
// counts for a departure board if it carries a departure time, and for an
// arrival board an arrival time.
func filterCandidates(station railnet.StationRef, direction railnet.Direction, schedules []railnet.ScheduleEntry) []railnet.ScheduleEntry {
	candidates := append([]railnet.ScheduleEntry{}, schedules...)
	seenIDs := map[int64]bool{}

	util.InPlaceFilter(&candidates, func(schedule railnet.ScheduleEntry) bool {
		if schedule.ID != 0 && seenIDs[schedule.ID] {
			return false
		}

		nominal := BuildItinerary(railnet.EffectiveScheduleInstance{ScheduleEntry: schedule})
		index := findStop(nominal, station)
		if index < 0 {
			return false
		}

		stop := nominal[index]
		if direction == railnet.DirectionArrival {
			if stop.ArrivalTime == "" {
				return false
			}
		} else if stop.DepartureTime == "" {
			return false
		}

		seenIDs[schedule.ID] = true
		return true
	})

	return candidates
}

func generateSection(station railnet.StationRef, direction railnet.Direction, candidates []railnet.ScheduleEntry, perturbations []railnet.Perturbation, directory *railnet.Directory, dateTime time.Time, dropPassed bool, exclude map[int64]bool) []*railnet.BoardEntry {
	p := pool.NewWithResults[*railnet.BoardEntry]()
	p.WithMaxGoroutines(64)

	for _, schedule := range candidates {
		p.Go(func() *railnet.BoardEntry {
			if exclude[schedule.ID] {
				return nil
			}

			if !schedule.RunsOn(dateTime) {
				return nil
			}

			instance := BuildEffectiveInstance(schedule, perturbations, dateTime)

			entry := buildEntry(station, direction, instance, directory)
			if entry == nil {
				return nil
			}

			// Same calendar day comparison; an absent display time is
			// always kept
			if dropPassed && entry.Time != "" {
				if displayMinutes, ok := railnet.ParseClock(entry.Time); ok {
					nowMinutes := dateTime.Hour()*60 + dateTime.Minute()
					if displayMinutes < nowMinutes {
						return nil
					}
				}
			}

			return entry
		})
	}

	var entries []*railnet.BoardEntry
	for _, entry := range p.Wait() {
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	return entries
}

func buildEntry(station railnet.StationRef, direction railnet.Direction, instance railnet.EffectiveScheduleInstance, directory *railnet.Directory) *railnet.BoardEntry {
	itinerary := AnnotateItinerary(instance, BuildItinerary(instance))

	index := findStop(itinerary, station)
	if index < 0 {
		return nil
	}
	stop := itinerary[index]

	displayTime := resolveDisplayTime(station, direction, instance, stop)

	destination := directory.ResolveName(instance.ArrivalRef())
	if terminus, ok := NewTerminus(instance); ok {
		destination = directory.ResolveName(terminus)
	}

	delay := DelayForStop(instance, stop, index, itinerary)

	return &railnet.BoardEntry{
		ScheduleID:  instance.ID,
		TrainNumber: instance.TrainNumber,
		TrainType:   instance.TrainType,

		Time:          displayTime,
		EstimatedTime: EstimatedTime(displayTime, delay.Minutes),
		DelayMinutes:  delay.Minutes,

		Origin:      directory.ResolveName(instance.DepartureRef()),
		Destination: destination,

		Platform: resolvePlatform(instance, station, stop),

		Cancelled:         instance.Cancelled,
		CancellationCause: instance.CancellationCause,
		Modified:          wasRerouted(instance),

		Itinerary: SliceForDirection(itinerary, station, direction),
	}
}

// resolveDisplayTime prefers the schedule's own origin/destination time when
// the queried station is that origin/destination, then the matched stop's
// direction-relevant time, falling back to its other time field.
func resolveDisplayTime(station railnet.StationRef, direction railnet.Direction, instance railnet.EffectiveScheduleInstance, stop railnet.ItineraryStop) string {
	if direction == railnet.DirectionArrival {
		if instance.ArrivalTime != "" && railnet.SameStation(station, instance.ArrivalRef()) {
			return instance.ArrivalTime
		}

		if stop.ArrivalTime != "" {
			return stop.ArrivalTime
		}
		return stop.DepartureTime
	}

	if instance.DepartureTime != "" && railnet.SameStation(station, instance.DepartureRef()) {
		return instance.DepartureTime
	}

	if stop.DepartureTime != "" {
		return stop.DepartureTime
	}
	return stop.ArrivalTime
}

// resolvePlatform: the schedule's per-station platform assignment wins over
// the stop's own voie field.
func resolvePlatform(instance railnet.EffectiveScheduleInstance, station railnet.StationRef, stop railnet.ItineraryStop) string {
	code := station.Code
	if code == "" {
		code = stop.StationCode
	}

	if code != "" {
		if platform := instance.PlatformAssignments[strings.ToUpper(code)]; platform != "" {
			return platform
		}
	}

	return stop.Platform
}

func wasRerouted(instance railnet.EffectiveScheduleInstance) bool {
	if len(instance.ItineraryChanges) > 0 {
		return true
	}

	for _, perturbation := range instance.AppliedPerturbations {
		if perturbation.Type == railnet.PerturbationTypeModificationParcour {
			return true
		}
	}

	return false
}

// sortEntries orders ascending by display time; the zero-padded HH:MM form
// makes lexicographic comparison chronological. Timeless entries sort first,
// keeping their relative order.
func sortEntries(entries []*railnet.BoardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Time == "" {
			return entries[j].Time != ""
		}
		if entries[j].Time == "" {
			return false
		}

		return entries[i].Time < entries[j].Time
	})
}
