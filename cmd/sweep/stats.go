package main

import (
	"math"

	"github.com/pthm-cable/openlife/telemetry"
)

// Metric names recorded for every run.
const (
	MetricPopulation = "population"
	MetricBirths     = "births"
	MetricDeaths     = "deaths"
	MetricSurvival   = "survival_ticks"
	MetricArea       = "area"
)

// Metrics lists the recorded metrics in output order.
var Metrics = []string{MetricPopulation, MetricBirths, MetricDeaths, MetricSurvival, MetricArea}

// tStatistic is the one-sample t-statistic of samples against mean.
// The standard deviation is floored so identical samples stay finite.
func tStatistic(samples []float64, mean float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	m, std := telemetry.MeanStd(samples)
	return (m - mean) / (math.Max(1e-6, std) / math.Sqrt(float64(len(samples))))
}

// significance maps |t| to a coarse confidence label.
func significance(t float64) string {
	t = math.Abs(t)
	switch {
	case t > 2.821:
		return ">99%"
	case t > 1.833:
		return ">95%"
	case t > 1.383:
		return ">90%"
	case t > 1.1:
		return ">85%"
	case t > 0.883:
		return ">80%"
	default:
		return "insignificant"
	}
}
