package worker

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

// Histogram buckets planet radii into uniform bins covering
// [0, max+bin_size) and renders the distribution as a PNG bar chart.
// Records missing pl_rade are discarded; if none remain the job fails with
// invalid input rather than crashing on an undefined max.
func Histogram(ctx context.Context, data *dataset.Service, job *domain.Job) ([]byte, error) {
	params := job.Histogram
	if params == nil {
		return nil, fmt.Errorf("%w: histogram job without histogram parameters", domain.ErrInvalidInput)
	}
	binSize := params.BinSize
	if binSize <= 0 {
		return nil, fmt.Errorf("%w: bin_size must be > 0, got %v", domain.ErrInvalidInput, binSize)
	}

	planets, err := data.Planets(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}

	var values []float64
	for i := range planets {
		if r := planets[i].RadiusEarth; r != nil && *r >= 0 {
			values = append(values, *r)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no radius values in dataset", domain.ErrInvalidInput)
	}

	return renderHistogram(binValues(values, binSize), binSize)
}

// binValues buckets values into uniform bins of width binSize covering
// [0, max+binSize). values must be non-empty and non-negative.
func binValues(values []float64, binSize float64) []float64 {
	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	nbins := int(math.Floor(maxVal/binSize)) + 1
	counts := make([]float64, nbins)
	for _, v := range values {
		idx := int(v / binSize)
		// Float division can land exactly on the upper edge.
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return counts
}

// renderHistogram draws the bar chart and encodes it as PNG bytes.
func renderHistogram(counts []float64, binSize float64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Planet Radius Distribution"
	p.X.Label.Text = "Radius (Earth radii)"
	p.Y.Label.Text = "Planets"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(bars)

	labels := make([]string, len(counts))
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2g", float64(i)*binSize)
	}
	p.NominalX(labels...)

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode histogram: %w", err)
	}
	return buf.Bytes(), nil
}
