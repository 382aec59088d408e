package domain

import (
	"regexp"
	"strconv"
)

// Planet is a typed view over the fields this service reads out of a cached
// exoplanet record. Records are stored verbatim as fetched from the archive;
// fields not listed here pass through the cache untouched.
type Planet struct {
	Name            string   `json:"pl_name"`
	Hostname        string   `json:"hostname"`
	DiscoveryMethod string   `json:"discoverymethod"`
	DiscoveryYear   *int     `json:"disc_year"`
	Facility        string   `json:"disc_facility"`
	RadiusEarth     *float64 `json:"pl_rade"`
}

// Planet names carry the host designation number followed by an optional
// planet letter, e.g. "Kepler-22 b", "HD 209458 b", "TRAPPIST-1 e".
var hostNumberRe = regexp.MustCompile(`([0-9]+)\s*[a-z]?$`)

// HostNumber extracts the numeric suffix of the host designation from the
// planet name. ok is false when the name carries no such number; callers
// skip those records.
func (p *Planet) HostNumber() (n int, ok bool) {
	m := hostNumberRe.FindStringSubmatch(p.Name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
