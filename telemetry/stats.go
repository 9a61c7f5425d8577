package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistics holds cumulative population events for a run.
// Every counter only grows.
type Statistics struct {
	Births                int `csv:"births"`
	Deaths                int `csv:"deaths"`
	OverpopulationDeaths  int `csv:"overpop_deaths"`
	UnderpopulationDeaths int `csv:"underpop_deaths"`
}

// Sub returns the events that happened between prev and s.
func (s Statistics) Sub(prev Statistics) Statistics {
	return Statistics{
		Births:                s.Births - prev.Births,
		Deaths:                s.Deaths - prev.Deaths,
		OverpopulationDeaths:  s.OverpopulationDeaths - prev.OverpopulationDeaths,
		UnderpopulationDeaths: s.UnderpopulationDeaths - prev.UnderpopulationDeaths,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Statistics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("overpop_deaths", s.OverpopulationDeaths),
		slog.Int("underpop_deaths", s.UnderpopulationDeaths),
	)
}

// PopulationSample holds per-cell values gathered at the end of a window.
type PopulationSample struct {
	Radius         []float64
	Life           []float64
	Affection      []float64
	Size           []float64
	AffectionPrime []float64

	Area             float64
	CenterX, CenterY float64
}

// Add appends one cell's values to the sample.
func (p *PopulationSample) Add(radius, life, affection, size, affectionPrime float64) {
	p.Radius = append(p.Radius, radius)
	p.Life = append(p.Life, life)
	p.Affection = append(p.Affection, affection)
	p.Size = append(p.Size, size)
	p.AffectionPrime = append(p.AffectionPrime, affectionPrime)
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population at window end
	Cells int `csv:"cells"`

	// Events during window
	Births                int `csv:"births"`
	Deaths                int `csv:"deaths"`
	OverpopulationDeaths  int `csv:"overpop_deaths"`
	UnderpopulationDeaths int `csv:"underpop_deaths"`

	// Distributions (sampled at window end)
	RadiusMean         float64 `csv:"radius_mean"`
	RadiusStd          float64 `csv:"radius_std"`
	LifeMean           float64 `csv:"life_mean"`
	LifeP10            float64 `csv:"life_p10"`
	LifeP50            float64 `csv:"life_p50"`
	LifeP90            float64 `csv:"life_p90"`
	AffectionMean      float64 `csv:"affection_mean"`
	AffectionStd       float64 `csv:"affection_std"`
	SizeMean           float64 `csv:"size_mean"`
	SizeStd            float64 `csv:"size_std"`
	AffectionPrimeMean float64 `csv:"affection_prime_mean"`
	AffectionPrimeStd  float64 `csv:"affection_prime_std"`

	// Spatial
	Area    float64 `csv:"area"`
	CenterX float64 `csv:"center_x"`
	CenterY float64 `csv:"center_y"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeLifeStats calculates mean and percentiles from life fractions.
func ComputeLifeStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return mean, Percentile(sorted, 0.10), Percentile(sorted, 0.50), Percentile(sorted, 0.90)
}

// MeanStd returns the mean and sample standard deviation of values.
// The deviation of fewer than two values is 0.
func MeanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("cells", s.Cells),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("overpop_deaths", s.OverpopulationDeaths),
		slog.Int("underpop_deaths", s.UnderpopulationDeaths),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("life_mean", s.LifeMean),
		slog.Float64("life_p50", s.LifeP50),
		slog.Float64("affection_mean", s.AffectionMean),
		slog.Float64("size_mean", s.SizeMean),
		slog.Float64("affection_prime_mean", s.AffectionPrimeMean),
		slog.Float64("area", s.Area),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"cells", s.Cells,
		"births", s.Births,
		"deaths", s.Deaths,
		"overpop_deaths", s.OverpopulationDeaths,
		"underpop_deaths", s.UnderpopulationDeaths,
		"radius_mean", s.RadiusMean,
		"radius_std", s.RadiusStd,
		"life_mean", s.LifeMean,
		"life_p10", s.LifeP10,
		"life_p50", s.LifeP50,
		"life_p90", s.LifeP90,
		"affection_mean", s.AffectionMean,
		"affection_std", s.AffectionStd,
		"size_mean", s.SizeMean,
		"size_std", s.SizeStd,
		"affection_prime_mean", s.AffectionPrimeMean,
		"affection_prime_std", s.AffectionPrimeStd,
		"area", s.Area,
		"center_x", s.CenterX,
		"center_y", s.CenterY,
	)
}
