package inputs

import (
	"context"

	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/sourcegraph/conc/pool"
)

// Provider fetches the three collaborator collections the board engine
// consumes. Implementations own transport, retry and record-level tolerance;
// the engine only ever sees fully materialised slices.
type Provider interface {
	Stations(ctx context.Context) ([]railnet.Station, error)
	Schedules(ctx context.Context) ([]railnet.ScheduleEntry, error)
	Perturbations(ctx context.Context) ([]railnet.Perturbation, error)
}

type BoardInputs struct {
	Stations      []railnet.Station
	Schedules     []railnet.ScheduleEntry
	Perturbations []railnet.Perturbation
}

func (i *BoardInputs) Directory() *railnet.Directory {
	return railnet.NewDirectory(i.Stations)
}

// ScheduleByID returns the schedule entry with the given id, if present.
func (i *BoardInputs) ScheduleByID(id int64) (railnet.ScheduleEntry, bool) {
	for _, schedule := range i.Schedules {
		if schedule.ID == id {
			return schedule, true
		}
	}

	return railnet.ScheduleEntry{}, false
}

// LoadBoardInputs issues the three reads concurrently - they have no ordering
// dependency between them. The first error aborts the load.
func LoadBoardInputs(ctx context.Context, provider Provider) (*BoardInputs, error) {
	inputs := &BoardInputs{}

	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		stations, err := provider.Stations(ctx)
		inputs.Stations = stations
		return err
	})
	p.Go(func(ctx context.Context) error {
		schedules, err := provider.Schedules(ctx)
		inputs.Schedules = schedules
		return err
	})
	p.Go(func(ctx context.Context) error {
		perturbations, err := provider.Perturbations(ctx)
		inputs.Perturbations = perturbations
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}
