package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

// jobRequest is the POST /jobs body. start/end select the range_count
// variant (both required together); otherwise the job is a histogram with
// bin_size defaulting to 1.0. Non-numeric values fail decoding and the
// request.
type jobRequest struct {
	Start   *int     `json:"start"`
	End     *int     `json:"end"`
	BinSize *float64 `json:"bin_size"`
}

func (req *jobRequest) toJob() (domain.Job, error) {
	if req.Start != nil || req.End != nil {
		if req.Start == nil || req.End == nil {
			return domain.Job{}, fmt.Errorf("%w: range job requires both start and end", domain.ErrInvalidInput)
		}
		return domain.Job{
			Type:  domain.TypeRangeCount,
			Range: &domain.RangeParams{Start: *req.Start, End: *req.End},
		}, nil
	}

	binSize := 1.0
	if req.BinSize != nil {
		binSize = *req.BinSize
	}
	return domain.Job{
		Type:      domain.TypeHistogram,
		Histogram: &domain.HistogramParams{BinSize: binSize},
	}, nil
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: decode job parameters: %v", domain.ErrInvalidInput, err))
		return
	}

	job, err := req.toJob()
	if err != nil {
		s.writeError(w, err)
		return
	}

	created, err := s.Registry.Create(r.Context(), job)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Registry.ListIDs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.Registry.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleGetResult disambiguates via job status, never by probing the result
// namespace first: the result value might legitimately be empty-equivalent.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := s.Registry.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch job.Status {
	case domain.StatusComplete:
		result, err := s.Results.Get(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "result not found")
			return
		}
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeResult(w, &job, result)

	case domain.StatusFailed:
		writeErr(w, http.StatusInternalServerError, "job failed")

	default:
		writeJSON(w, http.StatusAccepted, map[string]string{
			"status":  "pending",
			"message": "job is still in progress",
		})
	}
}

// writeResult encodes the payload by job type: histograms are raw PNG bytes,
// tabulations are a JSON envelope around the stored mapping.
func (s *Server) writeResult(w http.ResponseWriter, job *domain.Job, result []byte) {
	if job.Type == domain.TypeHistogram {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"result": json.RawMessage(result),
	})
}
