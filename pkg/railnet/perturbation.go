package railnet

import "strings"

type PerturbationType string

const (
	PerturbationTypeSuppression         PerturbationType = "suppression"
	PerturbationTypeModificationParcour PerturbationType = "modification_parcours"
	PerturbationTypeRetard              PerturbationType = "retard"
)

// Perturbation is a disruption record created by the admin collaborator. It
// targets a schedule entry by id, or by train number when the id is absent,
// and applies on the dates/weekdays listed in jours_impact (empty meaning
// always).
type Perturbation struct {
	ID int64 `json:"id" groups:"basic,detailed"`

	ScheduleID  int64  `json:"horaire_id,omitempty" groups:"detailed"`
	TrainNumber string `json:"numero_train,omitempty" groups:"detailed"`

	Type PerturbationType `json:"type" groups:"basic,detailed"`

	DelayMinutes FlexMinutes `json:"temps_retard_minutes,omitempty" groups:"basic,detailed"`

	Cause  string `json:"cause,omitempty" groups:"basic,detailed"`
	Reason string `json:"reason,omitempty" groups:"basic,detailed"`

	ImpactDays FlexStrings `json:"jours_impact,omitempty" groups:"detailed"`

	ItineraryChanges ChangeList `json:"parcours_changes,omitempty" groups:"detailed"`
}

// CancellationCause prefers the explicit cause over the free-text reason.
func (p *Perturbation) CancellationCause() string {
	if p.Cause != "" {
		return p.Cause
	}

	return p.Reason
}

type ChangeAction string

const (
	ChangeActionSuppression ChangeAction = "suppression"
	ChangeActionRetard      ChangeAction = "retard"
	ChangeActionProlonge    ChangeAction = "prolonge"
	ChangeActionNone        ChangeAction = "none"
)

// IsSuppression matches any action containing "suppression", as collaborators
// have been seen to write variants like "suppression_arret".
func (a ChangeAction) IsSuppression() bool {
	return strings.Contains(strings.ToLower(string(a)), string(ChangeActionSuppression))
}

func (a ChangeAction) ImpliesDelay() bool {
	lowered := ChangeAction(strings.ToLower(string(a)))
	return lowered == ChangeActionRetard || lowered == ChangeActionProlonge
}

func (a ChangeAction) IsNone() bool {
	return strings.EqualFold(string(a), string(ChangeActionNone))
}

// ItineraryChange is one patch to a single stop within a perturbation. An
// action of "none" appended as the last change of the list designates a new
// terminus for display.
type ItineraryChange struct {
	StationID   int64  `json:"station_id,omitempty" groups:"detailed"`
	StationCode string `json:"station_code,omitempty" groups:"detailed"`
	StationName string `json:"nom,omitempty" groups:"detailed"`

	Action ChangeAction `json:"action,omitempty" groups:"detailed"`

	DelayMinutes FlexMinutes `json:"delayMinutes,omitempty" groups:"detailed"`
	Cause        string      `json:"cause,omitempty" groups:"detailed"`

	ArrivalTime   string `json:"arrivee_time,omitempty" groups:"detailed"`
	DepartureTime string `json:"depart_time,omitempty" groups:"detailed"`
	Platform      string `json:"voie,omitempty" groups:"detailed"`

	Index    *int `json:"index,omitempty" groups:"detailed"`
	Position *int `json:"position,omitempty" groups:"detailed"`
}

func (c *ItineraryChange) Ref() StationRef {
	return StationRef{
		ID:   c.StationID,
		Code: c.StationCode,
		Name: c.StationName,
	}
}

// ExplicitIndex returns the requested insertion index, taken from either the
// index or position field.
func (c *ItineraryChange) ExplicitIndex() (int, bool) {
	if c.Index != nil {
		return *c.Index, true
	}

	if c.Position != nil {
		return *c.Position, true
	}

	return 0, false
}
