package main

import (
	"math"
	"sort"
)

// aggregate computes per-view statistics over the valid samples of one pass.
// Invalid (zero duration) samples are counted in Excluded and otherwise
// ignored.
func aggregate(samples []throughputSample) (passStatistics, error) {
	var stats passStatistics
	gbps := make([]float64, 0, len(samples))
	mbps := make([]float64, 0, len(samples))
	for _, sample := range samples {
		if !sample.Valid {
			stats.Excluded++
			continue
		}
		gbps = append(gbps, sample.GBps)
		mbps = append(mbps, sample.MBps)
	}
	if len(gbps) == 0 {
		return stats, errEmptySampleSet
	}
	stats.Samples = len(gbps)
	stats.GBps = summarize(gbps)
	stats.MBps = summarize(mbps)
	return stats, nil
}

func summarize(values []float64) throughputStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	result := throughputStats{
		Mean:   mean(values),
		Median: median(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	// Summation rounding must not push the mean outside [Min, Max].
	result.Mean = math.Max(result.Min, math.Min(result.Max, result.Mean))
	if len(values) >= 2 {
		stdDev := sampleStdDev(values, result.Mean)
		result.StdDev = &stdDev
	}
	return result
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// sampleStdDev requires at least two values.
func sampleStdDev(values []float64, mean float64) float64 {
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)-1))
}
