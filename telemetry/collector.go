package telemetry

// Collector turns the cumulative run statistics into per-window stats.
type Collector struct {
	windowTicks     int
	windowStartTick int
	last            Statistics
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and starts the next window.
// The caller must provide:
// - currentTick: the current simulation tick
// - cells: live population size
// - total: cumulative statistics so far
// - sample: per-cell values for distribution stats
func (c *Collector) Flush(currentTick, cells int, total Statistics, sample PopulationSample) WindowStats {
	delta := total.Sub(c.last)

	lifeMean, lifeP10, lifeP50, lifeP90 := ComputeLifeStats(sample.Life)
	radiusMean, radiusStd := MeanStd(sample.Radius)
	affMean, affStd := MeanStd(sample.Affection)
	sizeMean, sizeStd := MeanStd(sample.Size)
	primeMean, primeStd := MeanStd(sample.AffectionPrime)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Cells:           cells,

		Births:                delta.Births,
		Deaths:                delta.Deaths,
		OverpopulationDeaths:  delta.OverpopulationDeaths,
		UnderpopulationDeaths: delta.UnderpopulationDeaths,

		RadiusMean:         radiusMean,
		RadiusStd:          radiusStd,
		LifeMean:           lifeMean,
		LifeP10:            lifeP10,
		LifeP50:            lifeP50,
		LifeP90:            lifeP90,
		AffectionMean:      affMean,
		AffectionStd:       affStd,
		SizeMean:           sizeMean,
		SizeStd:            sizeStd,
		AffectionPrimeMean: primeMean,
		AffectionPrimeStd:  primeStd,

		Area:    sample.Area,
		CenterX: sample.CenterX,
		CenterY: sample.CenterY,
	}

	c.windowStartTick = currentTick
	c.last = total

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
