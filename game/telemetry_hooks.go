package game

// flushTelemetry emits window statistics when the stats window has elapsed
// and dumps cell positions every positions_period ticks.
func (g *Game) flushTelemetry() {
	tick := g.sim.Tick()
	g.dumpPositions(tick)
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.sim.CellCount(), g.sim.Statistics(), g.sim.Sample())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			g.log.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			g.log.Error("failed to write perf", "error", err)
		}
	}
}

func (g *Game) dumpPositions(tick int) {
	period := g.cfg.Telemetry.PositionsPeriod
	if g.outputManager == nil || period <= 0 || tick%period != 0 {
		return
	}
	g.records = g.sim.CellRecords(g.records[:0])
	if err := g.outputManager.WriteCells(g.records); err != nil {
		g.log.Error("failed to write cell positions", "error", err)
	}
}
