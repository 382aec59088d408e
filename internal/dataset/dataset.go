// Package dataset manages the exoplanet cache: one blocking upstream fetch
// populates it, reads scan it, and the only mutation paths are full load and
// full delete. The worker reads it but never writes it.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
)

type Service struct {
	cache  store.KV
	client *http.Client
	url    string
	logger *slog.Logger
}

func New(cache store.KV, archiveURL string, logger *slog.Logger) *Service {
	return &Service{
		cache:  cache,
		client: &http.Client{Timeout: 2 * time.Minute},
		url:    archiveURL,
		logger: logger,
	}
}

// Load fetches the archive and stores every record under its pl_name.
// Records with an empty or missing name are dropped: an unkeyable record
// must not overwrite the empty-string slot. Returns the number stored.
// Loading the same payload twice is idempotent by natural key.
func (s *Service) Load(ctx context.Context) (int, error) {
	records, err := s.fetchArchive(ctx)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, raw := range records {
		var key struct {
			Name string `json:"pl_name"`
		}
		if err := json.Unmarshal(raw, &key); err != nil {
			return loaded, fmt.Errorf("decode archive record: %w", err)
		}
		if key.Name == "" {
			s.logger.Warn("skipping record without pl_name")
			continue
		}
		if err := s.cache.Set(ctx, key.Name, raw); err != nil {
			return loaded, err
		}
		loaded++
	}
	s.logger.Info("dataset loaded", "records", loaded)
	return loaded, nil
}

// Records returns every cached record verbatim.
func (s *Service) Records(ctx context.Context) ([]json.RawMessage, error) {
	keys, err := s.cache.Keys(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		raw, err := s.cache.Get(ctx, key)
		if err != nil {
			// A reload racing this scan may have dropped the key.
			continue
		}
		records = append(records, json.RawMessage(raw))
	}
	return records, nil
}

// Get returns the record stored under name, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, name string) (json.RawMessage, error) {
	raw, err := s.cache.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// Delete clears the whole cache.
func (s *Service) Delete(ctx context.Context) error {
	if err := s.cache.Flush(ctx); err != nil {
		return err
	}
	s.logger.Info("dataset deleted")
	return nil
}

// Planets decodes every cached record into its typed view.
func (s *Service) Planets(ctx context.Context) ([]domain.Planet, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	planets := make([]domain.Planet, 0, len(records))
	for _, raw := range records {
		var p domain.Planet
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode planet record: %w", err)
		}
		planets = append(planets, p)
	}
	return planets, nil
}

// Filter narrows the name listing. Nil fields do not constrain. A radius
// bound excludes records missing pl_rade; with no radius bound those records
// are listed like any other.
type Filter struct {
	MinRadius *float64
	MaxRadius *float64
	Method    string
	StartYear *int
	EndYear   *int
}

func (f Filter) matches(p *domain.Planet) bool {
	if f.MinRadius != nil || f.MaxRadius != nil {
		if p.RadiusEarth == nil {
			return false
		}
		min, max := 0.0, math.Inf(1)
		if f.MinRadius != nil {
			min = *f.MinRadius
		}
		if f.MaxRadius != nil {
			max = *f.MaxRadius
		}
		if *p.RadiusEarth < min || *p.RadiusEarth > max {
			return false
		}
	}
	if f.Method != "" && p.DiscoveryMethod != f.Method {
		return false
	}
	if f.StartYear != nil && (p.DiscoveryYear == nil || *p.DiscoveryYear < *f.StartYear) {
		return false
	}
	if f.EndYear != nil && (p.DiscoveryYear == nil || *p.DiscoveryYear > *f.EndYear) {
		return false
	}
	return true
}

// Names lists the natural keys of records passing the filter.
func (s *Service) Names(ctx context.Context, f Filter) ([]string, error) {
	planets, err := s.Planets(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(planets))
	for i := range planets {
		if f.matches(&planets[i]) {
			names = append(names, planets[i].Name)
		}
	}
	return names, nil
}

// Hosts lists the unique host star names.
func (s *Service) Hosts(ctx context.Context) ([]string, error) {
	planets, err := s.Planets(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for i := range planets {
		if planets[i].Hostname != "" {
			seen[planets[i].Hostname] = struct{}{}
		}
	}
	hosts := make([]string, 0, len(seen))
	for h := range seen {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts, nil
}

// HostInfo describes one host star and its planets.
type HostInfo struct {
	Hostname   string   `json:"hostname"`
	NumPlanets int      `json:"num_planets"`
	Planets    []string `json:"planets"`
}

// HostPlanets returns the planets around hostname; domain.ErrNotFound when
// the cache holds none.
func (s *Service) HostPlanets(ctx context.Context, hostname string) (HostInfo, error) {
	planets, err := s.Planets(ctx)
	if err != nil {
		return HostInfo{}, err
	}
	var names []string
	for i := range planets {
		if planets[i].Hostname == hostname {
			names = append(names, planets[i].Name)
		}
	}
	if len(names) == 0 {
		return HostInfo{}, fmt.Errorf("%w: host star %q", domain.ErrNotFound, hostname)
	}
	return HostInfo{Hostname: hostname, NumPlanets: len(names), Planets: names}, nil
}

// Facilities lists the unique discovery facilities.
func (s *Service) Facilities(ctx context.Context) ([]string, error) {
	planets, err := s.Planets(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for i := range planets {
		if planets[i].Facility != "" {
			seen[planets[i].Facility] = struct{}{}
		}
	}
	facilities := make([]string, 0, len(seen))
	for f := range seen {
		facilities = append(facilities, f)
	}
	sort.Strings(facilities)
	return facilities, nil
}

// FacilityPlanets lists the planets discovered by facility. An unknown
// facility yields an empty list, not an error.
func (s *Service) FacilityPlanets(ctx context.Context, facility string) ([]string, error) {
	planets, err := s.Planets(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0)
	for i := range planets {
		if planets[i].Facility == facility {
			names = append(names, planets[i].Name)
		}
	}
	return names, nil
}
