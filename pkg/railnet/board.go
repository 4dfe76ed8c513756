package railnet

import (
	"fmt"
	"time"
)

type Direction string

const (
	DirectionDeparture Direction = "departure"
	DirectionArrival   Direction = "arrival"
)

func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case DirectionDeparture, "":
		return DirectionDeparture, nil
	case DirectionArrival:
		return DirectionArrival, nil
	default:
		return "", fmt.Errorf("unknown direction %q", value)
	}
}

// EffectiveScheduleInstance is the per-date materialisation of a schedule
// entry with all applicable perturbations folded in. It is computed fresh per
// query and never persisted.
type EffectiveScheduleInstance struct {
	ScheduleEntry `groups:"detailed"`

	Date time.Time `groups:"detailed"`

	Cancelled         bool   `groups:"basic,detailed"`
	CancellationCause string `groups:"basic,detailed"`

	DelayMinutes int `groups:"basic,detailed"`

	ItineraryChanges []ItineraryChange `groups:"detailed"`

	AppliedPerturbations []Perturbation `groups:"detailed"`
}

// GlobalDelayCause returns the cause of the perturbation that won the
// instance-level delay, if any names one.
func (i *EffectiveScheduleInstance) GlobalDelayCause() string {
	if i.DelayMinutes == 0 {
		return ""
	}

	for _, perturbation := range i.AppliedPerturbations {
		if int(perturbation.DelayMinutes) == i.DelayMinutes {
			if cause := perturbation.CancellationCause(); cause != "" {
				return cause
			}
		}
	}

	return ""
}

// ItineraryStop is one row of a built itinerary - a nominal or synthesised
// stop with any perturbation data merged in and the per-stop display
// annotations computed by the delay projector.
type ItineraryStop struct {
	Stop `groups:"basic,detailed"`

	Perturbed   bool         `groups:"basic,detailed"`
	Action      ChangeAction `json:",omitempty" groups:"detailed"`
	ChangeDelay int          `json:",omitempty" groups:"detailed"`
	Cause       string       `json:",omitempty" groups:"basic,detailed"`

	NewTerminus bool `groups:"basic,detailed"`
	Suppressed  bool `groups:"basic,detailed"`

	DelayMinutes    int  `groups:"basic,detailed"`
	DelayPropagated bool `groups:"detailed"`

	EstimatedArrivalTime   string `json:",omitempty" groups:"basic,detailed"`
	EstimatedDepartureTime string `json:",omitempty" groups:"basic,detailed"`
}

// BoardEntry is one displayed row of a station board.
type BoardEntry struct {
	ScheduleID  int64  `groups:"basic,detailed"`
	TrainNumber string `groups:"basic,detailed"`
	TrainType   string `groups:"basic,detailed"`

	Time          string `groups:"basic,detailed"`
	EstimatedTime string `json:",omitempty" groups:"basic,detailed"`
	DelayMinutes  int    `groups:"basic,detailed"`

	Origin      string `groups:"basic,detailed"`
	Destination string `groups:"basic,detailed"`

	Platform string `groups:"basic,detailed"`

	Cancelled         bool   `groups:"basic,detailed"`
	CancellationCause string `json:",omitempty" groups:"basic,detailed"`
	Modified          bool   `groups:"basic,detailed"`

	// Full per-direction itinerary, carried for on-demand expansion
	Itinerary []ItineraryStop `groups:"detailed"`
}
