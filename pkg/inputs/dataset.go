package inputs

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/gareboard/gareboard/pkg/railnet"
	"gopkg.in/yaml.v3"
)

// DatasetSource reads the collaborator collections from a local YAML or JSON
// file - used in development and by the debug CLI.
type DatasetSource struct {
	Path string
}

type datasetFile struct {
	Stations      []railnet.Station       `json:"gares"`
	Schedules     []railnet.ScheduleEntry `json:"horaires"`
	Perturbations []railnet.Perturbation  `json:"perturbations"`
}

func (s *DatasetSource) load() (*datasetFile, error) {
	contents, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var dataset datasetFile

	if strings.HasSuffix(s.Path, ".yaml") || strings.HasSuffix(s.Path, ".yml") {
		// Round-trip YAML through JSON so the collaborator field names and
		// the tolerant decoders apply to both formats
		var document map[string]any
		if err := yaml.Unmarshal(contents, &document); err != nil {
			return nil, err
		}

		contents, err = json.Marshal(document)
		if err != nil {
			return nil, err
		}
	}

	if err := json.Unmarshal(contents, &dataset); err != nil {
		return nil, err
	}

	return &dataset, nil
}

func (s *DatasetSource) Stations(ctx context.Context) ([]railnet.Station, error) {
	dataset, err := s.load()
	if err != nil {
		return nil, err
	}

	return dataset.Stations, nil
}

func (s *DatasetSource) Schedules(ctx context.Context) ([]railnet.ScheduleEntry, error) {
	dataset, err := s.load()
	if err != nil {
		return nil, err
	}

	return dataset.Schedules, nil
}

func (s *DatasetSource) Perturbations(ctx context.Context) ([]railnet.Perturbation, error) {
	dataset, err := s.load()
	if err != nil {
		return nil, err
	}

	return dataset.Perturbations, nil
}
