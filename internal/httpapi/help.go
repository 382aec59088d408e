package httpapi

import "net/http"

// RouteDoc documents one route for the machine-readable /help listing.
type RouteDoc struct {
	Methods string `json:"methods"`
	Doc     string `json:"doc"`
}

var routeDocs = map[string]RouteDoc{
	"/data": {
		Methods: "GET,POST,DELETE",
		Doc:     "POST fetches the exoplanet archive and loads it into the cache; GET returns every cached record; DELETE clears the cache.",
	},
	"/exoplanets": {
		Methods: "GET",
		Doc:     "List planet names. Optional filters: min_radius, max_radius, method, start_year, end_year.",
	},
	"/exoplanets/{name}": {
		Methods: "GET",
		Doc:     "Return the cached record for one planet; 404 if absent.",
	},
	"/hosts": {
		Methods: "GET",
		Doc:     "List unique host star names.",
	},
	"/hosts/{hostname}": {
		Methods: "GET",
		Doc:     "Return the planets around one host star; 404 when none are cached.",
	},
	"/facilities": {
		Methods: "GET",
		Doc:     "List unique discovery facilities.",
	},
	"/facilities/{facility}": {
		Methods: "GET",
		Doc:     "List the planets discovered by one facility.",
	},
	"/jobs": {
		Methods: "GET,POST",
		Doc:     "POST submits a job: {start, end} for a discovery-method tabulation over a host number range, or {bin_size} for a radius histogram (default 1.0). GET lists all job ids.",
	},
	"/jobs/{id}": {
		Methods: "GET",
		Doc:     "Return the full job record; 404 for an unknown id.",
	},
	"/results/{id}": {
		Methods: "GET",
		Doc:     "Return the job result: 202 while pending, 500 if the job failed, 404 if unknown, 200 with JSON counts or a PNG image once complete.",
	},
	"/help": {
		Methods: "GET",
		Doc:     "This route listing.",
	},
	"/healthz": {
		Methods: "GET",
		Doc:     "Liveness check including backing-store reachability.",
	},
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, routeDocs)
}
