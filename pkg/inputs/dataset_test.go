package inputs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatasetYAML = `
gares:
  - id: 7
    nom: Dijon-Ville
    code: DGV
  - id: 8
    nom: Besançon-Viotte
    code: BES
horaires:
  - id: 1
    numero_train: TER 895631
    depart_station_code: DGV
    depart_time: "10:00"
    arrivee_station_code: BES
    arrivee_time: "12:00"
    jours_circulation:
      lun: true
perturbations:
  - id: 10
    horaire_id: 1
    type: retard
    temps_retard_minutes: "10"
    jours_impact: lun
`

func writeDataset(t *testing.T, name string, contents string) *DatasetSource {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return &DatasetSource{Path: path}
}

func TestDatasetSourceYAML(t *testing.T) {
	source := writeDataset(t, "dataset.yaml", testDatasetYAML)
	ctx := context.Background()

	stations, err := source.Stations(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "Besançon-Viotte", stations[1].Name)

	schedules, err := source.Schedules(ctx)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "TER 895631", schedules[0].TrainNumber)
	assert.Equal(t, "10:00", schedules[0].DepartureTime)
	assert.True(t, schedules[0].Circulation.Monday)

	perturbations, err := source.Perturbations(ctx)
	require.NoError(t, err)
	require.Len(t, perturbations, 1)
	// Quoted minutes and a scalar jours_impact decode like their canonical forms
	assert.Equal(t, 10, int(perturbations[0].DelayMinutes))
	assert.Equal(t, []string{"lun"}, []string(perturbations[0].ImpactDays))
}

func TestDatasetSourceJSON(t *testing.T) {
	source := writeDataset(t, "dataset.json", `{
		"gares": [{"id": 7, "nom": "Dijon-Ville", "code": "DGV"}],
		"horaires": [],
		"perturbations": []
	}`)

	stations, err := source.Stations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "DGV", stations[0].Code)
}

func TestDatasetSourceMissingFile(t *testing.T) {
	source := &DatasetSource{Path: filepath.Join(t.TempDir(), "absent.yaml")}

	_, err := source.Stations(context.Background())

	assert.Error(t, err)
}
