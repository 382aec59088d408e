package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// fetchArchive performs the single blocking upstream call and decodes the
// response as a JSON array of flat records. Failures surface to the
// triggering request as-is; there is no automatic retry.
func (s *Service) fetchArchive(ctx context.Context) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build archive request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch archive: unexpected status %s", resp.Status)
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode archive response: %w", err)
	}
	s.logger.Debug("archive fetched", "records", len(records))
	return records, nil
}
