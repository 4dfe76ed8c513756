package inputs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gareboard/gareboard/pkg/railnet"
	"github.com/gareboard/gareboard/pkg/util"
	"github.com/rs/zerolog/log"
)

const adminAPIRequestTimeout = 10 * time.Second

// AdminAPISource reads the collaborator collections over HTTP+JSON from the
// admin service that owns them.
type AdminAPISource struct {
	BaseURL string
	Client  *http.Client
}

func NewAdminAPISource() *AdminAPISource {
	return &AdminAPISource{
		BaseURL: util.GetEnvironmentVariable("GAREBOARD_ADMIN_API", "http://localhost:9090"),
		Client:  &http.Client{Timeout: adminAPIRequestTimeout},
	}
}

func (s *AdminAPISource) Stations(ctx context.Context) ([]railnet.Station, error) {
	return fetchCollection[railnet.Station](ctx, s, "/gares")
}

func (s *AdminAPISource) Schedules(ctx context.Context) ([]railnet.ScheduleEntry, error) {
	return fetchCollection[railnet.ScheduleEntry](ctx, s, "/horaires")
}

func (s *AdminAPISource) Perturbations(ctx context.Context) ([]railnet.Perturbation, error) {
	return fetchCollection[railnet.Perturbation](ctx, s, "/perturbations")
}

// fetchCollection GETs a collection with bounded exponential retry, then
// decodes record by record so one malformed record is skipped with a warning
// instead of failing the whole read.
func fetchCollection[T any](ctx context.Context, s *AdminAPISource, path string) ([]T, error) {
	url := s.BaseURL + path

	var rawRecords []json.RawMessage

	operation := func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		response, err := s.Client.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("admin api returned %s for %s", response.Status, path)
		}

		rawRecords = nil
		return json.NewDecoder(response.Body).Decode(&rawRecords)
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx))
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(rawRecords))
	for _, raw := range rawRecords {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Skipping malformed collaborator record")
			continue
		}

		records = append(records, record)
	}

	return records, nil
}
